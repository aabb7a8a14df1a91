// Package assets resolves logical asset names to byte streams.
// Decoding is left to the front-end that consumes the bytes.
package assets

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
)

// ErrNotFound is returned when a resolver has no file for a name.
var ErrNotFound = errors.New("asset not found")

// Name is a logical asset name, independent of where the file lives.
type Name string

// Assets used by the graphical front-end.
const (
	Rocket         Name = "raket.png"
	Pipe           Name = "pipe.png"
	Background     Name = "background.png"
	MenuBackground Name = "menu_background.png"
	Jet            Name = "jet.png"
	Font           Name = "font.ttf"
	FlapSound      Name = "flap.wav"
	ScoreSound     Name = "score.wav"
	HitSound       Name = "hit.wav"
	FlybySound     Name = "jet_flyby.wav"
	Music          Name = "music.wav"
)

// Kind is the decoder family an asset needs.
type Kind int

const (
	KindImage Kind = iota
	KindFont
	KindSound
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindFont:
		return "font"
	case KindSound:
		return "sound"
	default:
		return "unknown"
	}
}

// Entry describes one required asset.
type Entry struct {
	Name Name
	Kind Kind
}

var manifest = []Entry{
	{Rocket, KindImage},
	{Pipe, KindImage},
	{Background, KindImage},
	{MenuBackground, KindImage},
	{Jet, KindImage},
	{Font, KindFont},
	{FlapSound, KindSound},
	{ScoreSound, KindSound},
	{HitSound, KindSound},
	{FlybySound, KindSound},
	{Music, KindSound},
}

// Manifest returns every asset the graphical front-end loads at startup.
func Manifest() []Entry {
	out := make([]Entry, len(manifest))
	copy(out, manifest)
	return out
}

// Resolver maps a logical name to a readable stream.
type Resolver interface {
	Open(name Name) (io.ReadCloser, error)
}

// FSResolver resolves names as paths inside a file system.
type FSResolver struct {
	fsys fs.FS
	root string
}

// NewFSResolver creates a resolver over fsys. Names are looked up at its root.
func NewFSResolver(fsys fs.FS) *FSResolver {
	return &FSResolver{fsys: fsys, root: "."}
}

// NewDirResolver creates a resolver over a directory on disk.
func NewDirResolver(dir string) *FSResolver {
	return &FSResolver{fsys: os.DirFS(dir), root: dir}
}

// Root returns the directory or "." for an fs.FS resolver.
func (r *FSResolver) Root() string {
	return r.root
}

// Open implements Resolver. Missing files are reported as ErrNotFound.
func (r *FSResolver) Open(name Name) (io.ReadCloser, error) {
	p := string(name)
	if !fs.ValidPath(p) || path.Clean(p) != p {
		return nil, fmt.Errorf("assets: %s: invalid name", name)
	}

	f, err := r.fsys.Open(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("assets: %s in %s: %w", name, r.root, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("assets: open %s: %w", name, err)
	}
	return f, nil
}

// Read returns the full contents of one asset.
func Read(r Resolver, name Name) ([]byte, error) {
	rc, err := r.Open(name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", name, err)
	}
	return data, nil
}

// Bundle holds the raw bytes of every manifest entry.
type Bundle map[Name][]byte

// LoadAll reads every manifest entry. All failures are reported together.
func LoadAll(r Resolver) (Bundle, error) {
	bundle := make(Bundle, len(manifest))
	var errs []error
	for _, e := range manifest {
		data, err := Read(r, e.Name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		bundle[e.Name] = data
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return bundle, nil
}

// Status is the result of checking one manifest entry.
type Status struct {
	Entry
	Size int
	Err  error
}

// Check resolves every manifest entry without stopping at the first failure.
func Check(r Resolver) []Status {
	out := make([]Status, 0, len(manifest))
	for _, e := range manifest {
		data, err := Read(r, e.Name)
		out = append(out, Status{Entry: e, Size: len(data), Err: err})
	}
	return out
}
