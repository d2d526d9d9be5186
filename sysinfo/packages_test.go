package sysinfo

import "testing"

func TestFormatPackageCounts(t *testing.T) {
	tests := []struct {
		name string
		in   []packageCount
		want string
	}{
		{"none detected", nil, ""},
		{"single", []packageCount{{"pacman", 873}}, "pacman: 873"},
		{
			"multiple keep order",
			[]packageCount{{"dpkg", 2143}, {"flatpak", 12}, {"snap", 5}},
			"dpkg: 2143, flatpak: 12, snap: 5",
		},
	}

	for _, tc := range tests {
		if got := formatPackageCounts(tc.in); got != tc.want {
			t.Fatalf("%s: formatPackageCounts = %q; want %q", tc.name, got, tc.want)
		}
	}
}

func TestCountLines(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"one", 1},
		{"one\ntwo\nthree", 3},
		{"one\n\n  \ntwo\n", 2},
	}

	for _, tc := range tests {
		if got := countLines(tc.in); got != tc.want {
			t.Fatalf("countLines(%q) = %d; want %d", tc.in, got, tc.want)
		}
	}
}

// The manager table is display order; a reordering would silently change
// user-visible output.
func TestPackageManagerOrder(t *testing.T) {
	want := []string{"dpkg", "pacman", "rpm", "apk", "brew", "flatpak", "snap"}
	if len(packageManagers) != len(want) {
		t.Fatalf("unexpected manager count %d", len(packageManagers))
	}
	for i, pm := range packageManagers {
		if pm.name != want[i] {
			t.Fatalf("manager %d = %q; want %q", i, pm.name, want[i])
		}
	}
}
