package scenepath

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseComponents(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want FilePath
	}{
		{
			name: "asset scene",
			raw:  "Z:/projects/Avatar/PROD/3D/scenes/ASSETS/CHARACTERS/NYC/AST_NYC_001.hip",
			want: FilePath{
				raw:       "Z:/projects/Avatar/PROD/3D/scenes/ASSETS/CHARACTERS/NYC/AST_NYC_001.hip",
				kind:      KindPath,
				location:  "Z:/projects/Avatar/PROD/3D/scenes/ASSETS/CHARACTERS/NYC/",
				prefix:    "AST",
				base:      "NYC",
				version:   "001",
				code:      "AST_NYC",
				extension: "hip",
			},
		},
		{
			name: "multi token base",
			raw:  "S:/location/AST_navigator_left_arm_012.mb",
			want: FilePath{
				raw:       "S:/location/AST_navigator_left_arm_012.mb",
				kind:      KindPath,
				location:  "S:/location/",
				prefix:    "AST",
				base:      "navigator_left_arm",
				version:   "012",
				code:      "AST_navigator_left_arm",
				extension: "mb",
			},
		},
		{
			name: "prefix and version only",
			raw:  "/show/geo/CACHE_007.abc",
			want: FilePath{
				raw:       "/show/geo/CACHE_007.abc",
				kind:      KindPath,
				location:  "/show/geo/",
				prefix:    "CACHE",
				version:   "007",
				code:      "CACHE",
				extension: "abc",
			},
		},
		{
			name: "version folder",
			raw:  "S:/location/001/code_name_001.mb",
			want: FilePath{
				raw:           "S:/location/001/code_name_001.mb",
				kind:          KindPath,
				location:      "S:/location/001/",
				folderVersion: "001",
				prefix:        "code",
				base:          "name",
				version:       "001",
				code:          "code_name",
				extension:     "mb",
			},
		},
		{
			name: "numeric parent that is not the version",
			raw:  "/p/SHOTS/RENDER/010/SHOT_010/RND_SHOT_010_004.hip",
			want: FilePath{
				raw:       "/p/SHOTS/RENDER/010/SHOT_010/RND_SHOT_010_004.hip",
				kind:      KindPath,
				location:  "/p/SHOTS/RENDER/010/SHOT_010/",
				prefix:    "RND",
				base:      "SHOT_010",
				version:   "004",
				code:      "RND_SHOT_010",
				extension: "hip",
			},
		},
		{
			name: "non numeric three letter parent",
			raw:  "/p/abc/AST_x_002.hip",
			want: FilePath{
				raw:       "/p/abc/AST_x_002.hip",
				kind:      KindPath,
				location:  "/p/abc/",
				prefix:    "AST",
				base:      "x",
				version:   "002",
				code:      "AST_x",
				extension: "hip",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.raw)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tc.raw, err)
			}
			if diff := cmp.Diff(tc.want, got, cmp.AllowUnexported(FilePath{})); diff != "" {
				t.Fatalf("Parse(%q) mismatch (-want +got):\n%s", tc.raw, diff)
			}
		})
	}
}

func TestParseRejectsMalformedPaths(t *testing.T) {
	tests := map[string]string{
		"single token":        "S:/loc/noversion.mb",
		"no extension":        "S:/loc/AST_NYC_001",
		"empty extension":     "S:/loc/AST_NYC_001.",
		"no directory":        "AST_NYC_001.hip",
		"trailing separator":  "S:/loc/",
		"non numeric version": "S:/loc/AST_NYC_v01.hip",
		"short version":       "S:/loc/AST_NYC_01.hip",
		"empty prefix":        "S:/loc/_NYC_001.hip",
		"double separator":    "S:/loc/AST__001.hip",
		"frame sequence":      "S:/loc/001/code_name_001.001.mb",
		"empty":               "",
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(raw)
			if err == nil {
				t.Fatalf("expected Parse(%q) to fail", raw)
			}
			if !errors.Is(err, ErrMalformedPath) {
				t.Fatalf("expected ErrMalformedPath, got %v", err)
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) || parseErr.Path != raw {
				t.Fatalf("expected *ParseError for %q, got %#v", raw, err)
			}
		})
	}
}

func TestBuildRoundTrip(t *testing.T) {
	paths := []string{
		"Z:/projects/Avatar/PROD/3D/scenes/ASSETS/CHARACTERS/NYC/AST_NYC_001.hip",
		"S:/location/code_name_001.mb",
		"S:/location/001/code_name_001.mb",
		"/show/geo/CACHE_007.abc",
		"/p/SHOTS/RENDER/010/SHOT_010/RND_SHOT_010_004.hip",
		"relative/dir/LAY_sq01_sh020_999.usd",
	}
	for _, raw := range paths {
		fp, err := Parse(raw)
		if err != nil {
			t.Fatalf("Parse(%q): %v", raw, err)
		}
		if got := Build(fp); got != raw {
			t.Fatalf("Build(Parse(%q)) = %q", raw, got)
		}
		if fp.Raw() != raw || fp.String() != raw {
			t.Fatalf("expected Raw to equal input, got %q", fp.Raw())
		}
		if fp.Location()+fp.Name() != raw {
			t.Fatalf("location %q and name %q do not compose %q", fp.Location(), fp.Name(), raw)
		}
	}
}

func TestKindString(t *testing.T) {
	if KindPath.String() != "path" || KindSequence.String() != "sequence" || KindLocation.String() != "location" {
		t.Fatal("unexpected kind labels")
	}
}
