package shadegrid

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/shadegrid/internal/image"
)

func runSmall(t *testing.T, filtered bool) *Result {
	t.Helper()
	cfg := smallConfig()
	cfg.Filter.Enabled = filtered
	p, err := NewPipeline(cfg, NewRandomSource(7))
	if err != nil {
		t.Fatalf("NewPipeline() error = %v", err)
	}
	res, err := p.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return res
}

func TestFileEncoder(t *testing.T) {
	res := runSmall(t, true)
	dir := t.TempDir()

	if err := res.Encode(FileEncoder{Dir: dir}); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	for name, want := range map[string]*Canvas{TextureFile: res.Noised, FilteredTextureFile: res.Filtered} {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("open %s: %v", name, err)
		}
		got, err := image.DecodePNG(f)
		_ = f.Close()
		if err != nil {
			t.Fatalf("DecodePNG(%s) error = %v", name, err)
		}
		if !got.Equal(want) {
			t.Errorf("%s does not round-trip", name)
		}
	}
}

func TestEncodeSkipsMissingFiltered(t *testing.T) {
	res := runSmall(t, false)

	var names []string
	err := res.Encode(EncoderFunc(func(name string, _ *Canvas) error {
		names = append(names, name)
		return nil
	}))
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if len(names) != 1 || names[0] != TextureFile {
		t.Errorf("encoded %v, want [%s]", names, TextureFile)
	}
}

func TestEncodeFailure(t *testing.T) {
	res := runSmall(t, true)
	errDisk := errors.New("disk full")

	err := res.Encode(EncoderFunc(func(name string, _ *Canvas) error {
		if name == FilteredTextureFile {
			return errDisk
		}
		return nil
	}))
	if !errors.Is(err, ErrEncoding) || !errors.Is(err, errDisk) {
		t.Fatalf("Encode() error = %v, want ErrEncoding wrapping the cause", err)
	}

	// The result stays usable after a failed encode.
	if err := res.Encode(FileEncoder{Dir: t.TempDir()}); err != nil {
		t.Errorf("second Encode() error = %v", err)
	}
}

func TestFileEncoderMissingDir(t *testing.T) {
	res := runSmall(t, false)
	err := res.Encode(FileEncoder{Dir: filepath.Join(t.TempDir(), "missing")})
	if !errors.Is(err, ErrEncoding) {
		t.Errorf("Encode() error = %v, want ErrEncoding", err)
	}
}
