package morse

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/pkg/errors"
)

// ExportError reports a failed audio export. An existing output file is
// left untouched when an export fails.
type ExportError struct {
	Format AudioType
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export %s: %v", e.Format, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }

// Export writes buf to filename in the requested container. The encoded
// file is staged next to the destination and renamed into place, so a
// failed export never leaves a half-written file behind.
func Export(buf *audio.IntBuffer, filename string, typ AudioType) error {
	var err error
	switch typ {
	case AudioTypeWav:
		err = exportWav(buf, filename)
	case AudioTypeMp3:
		err = exportMP3(buf, filename)
	default:
		err = errors.Errorf("unsupported output format %q (supported: wav, mp3)", typ)
	}

	if err != nil {
		return &ExportError{Format: typ, Err: err}
	}

	return nil
}

func exportWav(buf *audio.IntBuffer, filename string) error {
	staged, err := stageWav(buf, filepath.Dir(filename))
	if err != nil {
		return err
	}

	if err := os.Rename(staged, filename); err != nil {
		_ = os.Remove(staged)
		return errors.Wrap(err, "move wav into place")
	}

	return nil
}

// stageWav encodes buf as a wav file in dir and returns its path. The
// caller owns the staged file.
func stageWav(buf *audio.IntBuffer, dir string) (string, error) {
	f, err := os.CreateTemp(dir, "morsewave-*.wav")
	if err != nil {
		return "", errors.Wrap(err, "create staging file")
	}

	discard := func() {
		_ = f.Close()
		_ = os.Remove(f.Name())
	}

	enc := wav.NewEncoder(f, buf.Format.SampleRate, buf.SourceBitDepth, buf.Format.NumChannels, 1)
	if err := enc.Write(buf); err != nil {
		discard()
		return "", errors.Wrap(err, "encode wav")
	}
	if err := enc.Close(); err != nil {
		discard()
		return "", errors.Wrap(err, "finalize wav")
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", errors.Wrap(err, "close staging file")
	}

	return f.Name(), nil
}

func exportMP3(buf *audio.IntBuffer, filename string) error {
	ffmpeg, err := exec.LookPath("ffmpeg")
	if err != nil {
		return errors.Wrap(err, "mp3 export needs ffmpeg on PATH")
	}

	wavPath, err := stageWav(buf, filepath.Dir(filename))
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(wavPath) }()

	staged := wavPath + ".mp3"
	cmd := exec.Command(ffmpeg,
		"-i", wavPath,
		"-codec:a", "libmp3lame",
		"-qscale:a", "2",
		"-y", staged,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		_ = os.Remove(staged)
		return errors.Wrapf(err, "ffmpeg failed to encode mp3: %s", lastLine(out))
	}

	if err := os.Rename(staged, filename); err != nil {
		_ = os.Remove(staged)
		return errors.Wrap(err, "move mp3 into place")
	}

	return nil
}

// lastLine trims ffmpeg's banner noise down to its final message.
func lastLine(out []byte) string {
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) == 0 {
		return ""
	}
	return strings.TrimSpace(lines[len(lines)-1])
}
