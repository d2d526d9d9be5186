package sysinfo

import "github.com/sirupsen/logrus"

// log is the package logger. Probe failures are reported here at debug
// level only, so normal banner output stays clean.
var log = logrus.StandardLogger()
