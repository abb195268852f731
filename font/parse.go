package font

import "io"
import "io/fs"
import "os"
import "errors"
import "strings"

import "golang.org/x/image/font/sfnt"

// Similar to [sfnt.Parse](), but also returning the font's full name
// as reported by its naming table. The bytes must not be modified
// while the font is in use.
//
// [sfnt.Parse]: https://pkg.go.dev/golang.org/x/image/font/sfnt#Parse
func Parse(fontBytes []byte) (*sfnt.Font, string, error) {
	parsedFont, err := sfnt.Parse(fontBytes)
	if err != nil {
		return nil, "", err
	}
	name, err := FullName(parsedFont)
	return parsedFont, name, err
}

// Parses the font at the given filepath and returns it along its
// name and any possible error. Supported formats are .ttf and .otf.
func ParseFile(path string) (*sfnt.Font, string, error) {
	if !validFontExtension(path) {
		return nil, "", errors.New("invalid font path '" + path + "'")
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	return parseAndClose(file)
}

// Same as [ParseFile](), but for filesystems. This is mainly
// provided to support [embed.FS] and embedded fonts.
func ParseFS(filesys fs.FS, path string) (*sfnt.Font, string, error) {
	if !validFontExtension(path) {
		return nil, "", errors.New("invalid font path '" + path + "'")
	}
	file, err := filesys.Open(path)
	if err != nil {
		return nil, "", err
	}
	return parseAndClose(file)
}

func parseAndClose(file io.ReadCloser) (*sfnt.Font, string, error) {
	fontBytes, err := io.ReadAll(file)
	if err != nil {
		_ = file.Close()
		return nil, "", err
	}
	err = file.Close()
	if err != nil {
		return nil, "", err
	}
	return Parse(fontBytes)
}

// Whether the path ends in .ttf or .otf, case insensitively.
func validFontExtension(path string) bool {
	if len(path) < 4 { return false }
	extension := strings.ToLower(path[len(path) - 4:])
	return extension == ".ttf" || extension == ".otf"
}
