package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/meshtools/wireview/pkg/cache"
	"github.com/meshtools/wireview/pkg/errors"
	"github.com/meshtools/wireview/pkg/transform"
)

const quad = "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3 4\n"

func writeObj(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.obj")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseStep(t *testing.T) {
	tests := []struct {
		spec    string
		want    Step
		wantErr bool
	}{
		{spec: "move:x:1.5", want: Step{Kind: transform.Move, Axis: transform.AxisX, Value: 1.5}},
		{spec: "rotate:z:90", want: Step{Kind: transform.Rotate, Axis: transform.AxisZ, Value: 90}},
		{spec: "scale:2", want: Step{Kind: transform.Scale, Axis: transform.AxisX, Value: 2}},
		{spec: "scale:y:0.5", want: Step{Kind: transform.Scale, Axis: transform.AxisY, Value: 0.5}},
		{spec: "move:x:-3", want: Step{Kind: transform.Move, Axis: transform.AxisX, Value: -3}},
		{spec: "shear:x:1", wantErr: true},
		{spec: "move:w:1", wantErr: true},
		{spec: "move:x:abc", wantErr: true},
		{spec: "move:1", wantErr: true},
		{spec: "move", wantErr: true},
		{spec: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := ParseStep(tt.spec)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.spec)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStep(%q): %v", tt.spec, err)
			}
			if got != tt.want {
				t.Errorf("ParseStep(%q) = %+v, want %+v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestOptionsValidation(t *testing.T) {
	var opts Options
	if err := opts.ValidateAndSetDefaults(); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("missing source error = %v", err)
	}

	opts = Options{Source: "a.obj", Formats: []string{"png"}}
	if err := opts.ValidateAndSetDefaults(); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("invalid format error = %v", err)
	}

	opts = Options{Source: "a.obj"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != "svg" {
		t.Errorf("default formats = %v", opts.Formats)
	}
	if opts.Width != 800 || opts.Height != 600 {
		t.Errorf("default size = %v x %v", opts.Width, opts.Height)
	}
}

func TestExecute(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	opts := Options{
		Source:  writeObj(t, quad),
		Formats: []string{"svg", "json"},
	}

	result, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.Stats.VertexCount != 4 || result.Stats.EdgeCount != 4 {
		t.Errorf("stats = %+v", result.Stats)
	}
	if !strings.Contains(string(result.Artifacts["svg"]), "<line ") {
		t.Error("svg artifact missing edges")
	}
	if !strings.Contains(string(result.Artifacts["json"]), `"vertices"`) {
		t.Error("json artifact missing vertices")
	}
	if result.MeshHash == "" {
		t.Error("mesh hash not computed")
	}
}

func TestExecuteWithSteps(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	opts := Options{
		Source:  writeObj(t, "v 1 0 0\n"),
		Formats: []string{"json"},
		Steps: []Step{
			{Kind: transform.Rotate, Axis: transform.AxisZ, Value: 90},
			{Kind: transform.Scale, Value: 2},
		},
	}

	result, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	coords := result.Buffer.Coordinates
	// (1,0,0) rotated 90 around Z is (0,-1,0), then scaled by 2.
	if coords[1] > -1.99 || coords[1] < -2.01 {
		t.Errorf("coordinates after steps = %v", coords)
	}
}

func TestExecuteMissingSource(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	opts := Options{Source: filepath.Join(t.TempDir(), "missing.obj")}

	_, err := runner.Execute(context.Background(), opts)
	if !errors.Is(err, errors.ErrCodeOpenFailed) {
		t.Fatalf("error = %v, want OPEN_FAILED", err)
	}
}

func TestExecuteIncorrectData(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	opts := Options{Source: writeObj(t, "v bad data\n")}

	_, err := runner.Execute(context.Background(), opts)
	if !errors.Is(err, errors.ErrCodeIncorrectData) {
		t.Fatalf("error = %v, want INCORRECT_DATA", err)
	}
}

func TestExecuteUsesMeshCache(t *testing.T) {
	fileCache, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer fileCache.Close()

	runner := NewRunner(fileCache, nil, nil)
	opts := Options{Source: writeObj(t, quad), Formats: []string{"svg"}}

	first, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if first.CacheInfo.MeshHit || first.CacheInfo.RenderHit {
		t.Errorf("first run should miss: %+v", first.CacheInfo)
	}

	second, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !second.CacheInfo.MeshHit {
		t.Error("second run should hit the mesh cache")
	}
	if !second.CacheInfo.RenderHit {
		t.Error("second run should hit the artifact cache")
	}
	if string(first.Artifacts["svg"]) != string(second.Artifacts["svg"]) {
		t.Error("cached artifact differs from rendered artifact")
	}

	// Refresh bypasses the cache.
	opts.Refresh = true
	third, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("third Execute: %v", err)
	}
	if third.CacheInfo.MeshHit || third.CacheInfo.RenderHit {
		t.Errorf("refresh run should miss: %+v", third.CacheInfo)
	}
}
