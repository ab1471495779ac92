package version

import "testing"

func TestFromBuildInfo(t *testing.T) {
	tests := []struct {
		name        string
		settings    map[string]string
		wantVersion string
		wantCommit  string
	}{
		{
			name: "dirty checkout",
			settings: map[string]string{
				"vcs.revision": "0123456789abcdef",
				"vcs.modified": "true",
				"vcs.time":     "2026-03-01T10:00:00Z",
			},
			wantVersion: "dev-20260301",
			wantCommit:  "0123456-dirty",
		},
		{
			name: "installed module",
			settings: map[string]string{
				"main.version": "v0.3.0",
				"vcs.revision": "abc",
			},
			wantVersion: "v0.3.0",
			wantCommit:  "abc",
		},
		{
			name:        "nothing stamped",
			settings:    nil,
			wantVersion: "",
			wantCommit:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldV, oldC := Version, Commit
			defer func() { Version, Commit = oldV, oldC }()

			Version, Commit = "", ""
			fromBuildInfo(tt.settings)

			if Version != tt.wantVersion || Commit != tt.wantCommit {
				t.Errorf("got %q/%q, want %q/%q", Version, Commit, tt.wantVersion, tt.wantCommit)
			}
		})
	}
}

func TestFull(t *testing.T) {
	oldV, oldC := Version, Commit
	defer func() { Version, Commit = oldV, oldC }()

	Version, Commit = "v1.0.0", "abc1234"
	if got := Full(); got != "v1.0.0 (commit: abc1234)" {
		t.Errorf("Full() = %q", got)
	}
}
