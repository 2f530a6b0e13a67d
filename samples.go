package postfix

import (
	"io"
	"path"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/rakyll/statik/fs"

	_ "github.com/gabsfredes/postfix/statik"
)

//go:generate statik -src=samples -f

// Sample is a bundled example expression.
type Sample struct {
	Name   string
	Source string
}

// Samples returns the bundled examples sorted by name.
func Samples() ([]Sample, error) {
	statikFS, err := fs.New()
	if err != nil {
		return nil, errors.Wrap(err, "open samples")
	}
	dir, err := statikFS.Open("/")
	if err != nil {
		return nil, errors.Wrap(err, "open samples")
	}
	defer dir.Close()

	fis, err := dir.Readdir(-1)
	if err != nil {
		return nil, errors.Wrap(err, "list samples")
	}
	var samples []Sample
	for _, fi := range fis {
		if fi.IsDir() || path.Ext(fi.Name()) != ".lisp" {
			continue
		}
		f, err := statikFS.Open(path.Join("/", fi.Name()))
		if err != nil {
			return nil, errors.Wrapf(err, "open sample %s", fi.Name())
		}
		b, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, errors.Wrapf(err, "read sample %s", fi.Name())
		}
		samples = append(samples, Sample{
			Name:   strings.TrimSuffix(fi.Name(), ".lisp"),
			Source: string(b),
		})
	}
	sort.Slice(samples, func(i, j int) bool {
		return samples[i].Name < samples[j].Name
	})
	return samples, nil
}

// LookupSample returns the bundled example called name.
func LookupSample(name string) (Sample, error) {
	samples, err := Samples()
	if err != nil {
		return Sample{}, err
	}
	for _, s := range samples {
		if s.Name == name {
			return s, nil
		}
	}
	return Sample{}, errors.Errorf("no sample named %q", name)
}
