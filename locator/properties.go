package locator

import (
	"bufio"
	"errors"
	"io/fs"
	"strings"
)

// LookupProperty reads a properties-style file at path inside fsys and
// returns the value for key. A missing file or missing key is ("", false,
// nil); a file that exists but cannot be read surfaces the error.
//
// The format is one key=value pair per line; # and ! start comment lines,
// keys and values are trimmed of surrounding whitespace.
func LookupProperty(fsys fs.FS, path, key string) (string, bool, error) {
	file, err := fsys.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' || line[0] == '!' {
			continue
		}
		sep := strings.IndexByte(line, '=')
		if sep == -1 {
			continue
		}
		if strings.TrimSpace(line[:sep]) == key {
			return strings.TrimSpace(line[sep+1:]), true, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", false, err
	}
	return "", false, nil
}
