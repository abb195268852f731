package font

import "io/fs"
import "errors"
import "path/filepath"

import "golang.org/x/image/font/sfnt"

// Returned when a font is not added to a [Library] because its name
// is already taken.
var ErrAlreadyPresent = errors.New("font already present in the library")

// A special error that [Library.Each]() callbacks can return to stop
// the iteration early while still making Each return a nil error.
var ErrStopIteration = errors.New("stop Each() iteration")

// A collection of fonts accessible by their full name.
//
// The goal of a library is to make it easy to parse fonts in bulk
// and keep them all in a single place. Libraries are not safe for
// concurrent modification.
type Library struct {
	fonts map[string]*sfnt.Font
}

// Creates a new, empty font [Library].
func NewLibrary() *Library {
	return &Library{
		fonts: make(map[string]*sfnt.Font),
	}
}

// Returns the current number of fonts in the library.
func (self *Library) Len() int { return len(self.fonts) }

// Whether a font with the given name exists in the library.
func (self *Library) Has(name string) bool {
	_, found := self.fonts[name]
	return found
}

// Returns the font with the given name, or nil if not found. The
// name must match the full name reported when the font was loaded;
// [Library.Each]() can help you discover the names you have around.
func (self *Library) Get(name string) *sfnt.Font {
	return self.fonts[name]
}

// Adds an already parsed font into the library and returns its name
// and any possible error. Nil fonts will panic. If another font with
// the same name is already present, [ErrAlreadyPresent] is returned.
//
// This method is rarely necessary unless the font parsing is done by
// an external package; prefer the Load*() methods otherwise.
func (self *Library) Add(font *sfnt.Font) (string, error) {
	if font == nil { panic("nil font") } // likely a dev mistake
	name, err := FullName(font)
	if err != nil { return "", err }
	return name, self.register(font, name)
}

// Parses the given font bytes and adds the font into the library,
// returning its name and any possible error. The bytes must not be
// modified while the font is in use. If a font with the same name
// has already been loaded, [ErrAlreadyPresent] will be returned.
func (self *Library) LoadBytes(fontBytes []byte) (string, error) {
	font, name, err := Parse(fontBytes)
	if err != nil { return name, err }
	return name, self.register(font, name)
}

// The equivalent of [Library.LoadBytes]() for font filepaths.
func (self *Library) LoadFile(path string) (string, error) {
	font, name, err := ParseFile(path)
	if err != nil { return name, err }
	return name, self.register(font, name)
}

// The equivalent of [Library.LoadFile]() for filesystems. This is
// mainly provided to support [embed.FS] and embedded fonts.
func (self *Library) LoadFS(filesys fs.FS, path string) (string, error) {
	font, name, err := ParseFS(filesys, path)
	if err != nil { return name, err }
	return name, self.register(font, name)
}

// Walks the given directory non-recursively and loads every .ttf and
// .otf font found in it. Returns the number of fonts added, the
// number of fonts skipped due to name collisions, and any error that
// might interrupt the process.
func (self *Library) LoadDir(dirName string) (added, skipped int, err error) {
	absDirPath, err := filepath.Abs(dirName)
	if err != nil { return 0, 0, err }

	err = filepath.WalkDir(absDirPath,
		func(path string, info fs.DirEntry, err error) error {
			if err != nil { return err }
			if info.IsDir() {
				if path == absDirPath { return nil }
				return fs.SkipDir
			}
			if !validFontExtension(path) { return nil }
			_, err = self.LoadFile(path)
			if err == ErrAlreadyPresent {
				skipped += 1
				return nil
			}
			if err == nil { added += 1 }
			return err
		})
	return added, skipped, err
}

// The equivalent of [Library.LoadDir]() for filesystems.
func (self *Library) LoadAllFS(filesys fs.FS, dirName string) (added, skipped int, err error) {
	entries, err := fs.ReadDir(filesys, dirName)
	if err != nil { return 0, 0, err }

	if dirName == "." {
		dirName = ""
	} else if len(dirName) == 0 || dirName[len(dirName) - 1] != '/' {
		dirName += "/"
	}

	for _, entry := range entries {
		if entry.IsDir() { continue }
		if !validFontExtension(entry.Name()) { continue }
		_, err = self.LoadFS(filesys, dirName + entry.Name())
		if err == ErrAlreadyPresent {
			skipped += 1
			continue
		}
		if err != nil { return added, skipped, err }
		added += 1
	}
	return added, skipped, nil
}

// Removes the font with the given name from the library, reporting
// whether it was found.
func (self *Library) Remove(name string) bool {
	if !self.Has(name) { return false }
	delete(self.fonts, name)
	return true
}

// Calls the given function for each font in the library, passing the
// font names and contents as arguments, in pseudo-random order.
//
// If the function returns a non-nil error, the iteration stops right
// away and Each returns that error, with [ErrStopIteration] as the
// only exception (reported back as nil).
func (self *Library) Each(eachFunc func(name string, font *sfnt.Font) error) error {
	for name, font := range self.fonts {
		err := eachFunc(name, font)
		if err != nil {
			if err == ErrStopIteration { return nil }
			return err
		}
	}
	return nil
}

func (self *Library) register(font *sfnt.Font, name string) error {
	if self.Has(name) { return ErrAlreadyPresent }
	self.fonts[name] = font
	return nil
}
