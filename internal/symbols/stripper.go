package symbols

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mmr-tortoise/publishkit/internal/buildlog"
	"github.com/mmr-tortoise/publishkit/internal/model"
)

// sourceSuffix is the only file extension the stripper will touch.
// The pre-flight check rejects anything else before any I/O happens.
const sourceSuffix = ".cs"

// utf8BOM is the UTF-8 byte-order mark some Windows editors prepend.
// It is tolerated on read and never written back.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ValidateFiles is the static pre-flight check on a caller-supplied
// file list: every entry must name a C# source file. It runs before any
// file is opened so a bad list never results in a half-stripped tree.
func ValidateFiles(files []string) error {
	for _, name := range files {
		if !strings.HasSuffix(strings.ToLower(name), sourceSuffix) {
			return model.NewCLIError(model.ExitConfigError,
				fmt.Sprintf("expected only %s files to be stripped of symbols, got %q",
					sourceSuffix, name))
		}
	}
	return nil
}

// Stripper rewrites source files to undefine one symbol. Construct with
// NewStripper; the logger receives one info line per modified file and
// one warning per missing file.
type Stripper struct {
	symbol string
	log    *buildlog.Logger
}

// NewStripper creates a Stripper for the given symbol name (without the
// directive marker, e.g. "WINDOWS").
func NewStripper(symbol string, log *buildlog.Logger) *Stripper {
	return &Stripper{symbol: symbol, log: log}
}

// Strip applies the transform to every listed file. Behavior per file:
//
//   - missing file: warning logged, file skipped, run continues;
//   - already stripped or no insertion point: left byte-for-byte
//     unchanged;
//   - otherwise: rewritten in place with the undefine directive
//     inserted after the leading directive run.
//
// With dryRun set, nothing is written; the intended change is logged
// instead. The file list is validated with ValidateFiles before any
// file is read.
func (s *Stripper) Strip(files []string, dryRun bool) error {
	if err := ValidateFiles(files); err != nil {
		return err
	}

	for _, name := range files {
		info, err := os.Stat(name)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				s.log.Warnf("Specified file to be stripped [%s] does not exist.", name)
				continue
			}
			return model.WrapCLIError(model.ExitGeneralError,
				fmt.Sprintf("failed to stat %s", name), err)
		}

		if dryRun {
			s.log.Infof("dry run: would undefine %s in %s", s.symbol, name)
			continue
		}

		changed, err := s.stripFile(name, info)
		if err != nil {
			return err
		}
		if changed {
			s.log.Infof("undefined %s in %s", s.symbol, name)
		} else {
			s.log.Debugf("no insertion point for %s in %s, left unchanged", s.symbol, name)
		}
	}
	return nil
}

// stripFile rewrites a single file and reports whether it changed.
// info is the caller's stat result, used to carry the original file
// mode over to the replacement. The new content is fully staged in a
// temporary file next to the target and moved into place with a
// rename, so a failure partway through never truncates the source file.
func (s *Stripper) stripFile(path string, info os.FileInfo) (bool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return false, model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("failed to read %s", path), err)
	}

	// Tolerate a leading BOM on read; a rewritten file is written
	// without one. Untouched files are not rewritten at all.
	content := bytes.TrimPrefix(raw, utf8BOM)
	out, changed := insertUndef(content, s.symbol)
	if !changed {
		return false, nil
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".publishkit-strip-*")
	if err != nil {
		return false, model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("failed to stage rewrite of %s", path), err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(out); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return false, model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("failed to stage rewrite of %s", path), err)
	}
	if err := tmp.Chmod(info.Mode().Perm()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return false, model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("failed to stage rewrite of %s", path), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return false, model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("failed to stage rewrite of %s", path), err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return false, model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("failed to replace %s", path), err)
	}
	return true, nil
}

// insertUndef inserts "#undef <symbol>" immediately before the first
// line that is not a preprocessor directive, where directive-ness is a
// strict prefix run from the start of the content. Everything after the
// insertion point is copied verbatim with no further scanning.
//
// No insertion happens when:
//
//   - the content consists only of directive lines (or is empty) — the
//     run never ends, so there is nowhere to insert;
//   - the leading run already contains the undefine directive for this
//     symbol, which makes the transform idempotent.
func insertUndef(content []byte, symbol string) ([]byte, bool) {
	undef := []byte("#undef " + symbol)

	offset := 0
	for offset < len(content) {
		end := bytes.IndexByte(content[offset:], '\n')
		var line []byte
		if end < 0 {
			line = content[offset:]
			end = len(content)
		} else {
			end = offset + end + 1
			line = content[offset:end]
		}

		trimmed := bytes.TrimSpace(line)
		if len(trimmed) > 0 && trimmed[0] == '#' {
			if bytes.Equal(trimmed, undef) {
				return content, false
			}
			offset = end
			continue
		}

		out := make([]byte, 0, len(content)+len(undef)+1)
		out = append(out, content[:offset]...)
		out = append(out, undef...)
		out = append(out, '\n')
		out = append(out, content[offset:]...)
		return out, true
	}
	return content, false
}
