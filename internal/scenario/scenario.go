// Package scenario runs YAML-scripted container workloads. It backs the
// vecbench CLI and doubles as an integration fixture format for the library.
package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/rawvec-go/rawvec/pkg/vec"
)

// Op is a single scripted container operation.
type Op struct {
	Do    string `yaml:"do"` // push, pushclone, insert, erase, pop, reserve, resize
	Value int    `yaml:"value,omitempty"`
	Index int    `yaml:"index,omitempty"`
	N     int    `yaml:"n,omitempty"`
}

// Expect describes the final state a scenario asserts. Nil fields are not
// checked.
type Expect struct {
	Len      *int  `yaml:"len,omitempty"`
	Cap      *int  `yaml:"cap,omitempty"`
	Elements []int `yaml:"elements,omitempty"`
}

// Scenario is a scripted workload executed against an int vector.
type Scenario struct {
	Name   string  `yaml:"name,omitempty"`
	Ops    []Op    `yaml:"ops"`
	Expect *Expect `yaml:"expect,omitempty"`
}

// Report summarizes one scenario run.
type Report struct {
	Name     string        `json:"name"`
	Len      int           `json:"len"`
	Cap      int           `json:"cap"`
	Elements []int         `json:"elements"`
	Elapsed  time.Duration `json:"elapsed"`
}

// Load reads a scenario from a YAML file. A scenario without an explicit name
// is named after its file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	if s.Name == "" {
		base := filepath.Base(path)
		s.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return &s, nil
}

// Find expands a doublestar glob (e.g. "scenarios/**/*.yaml") into a sorted
// list of scenario file paths.
func Find(pattern string) ([]string, error) {
	paths, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}
	slices.Sort(paths)
	return paths, nil
}

// Run executes the ops in order against a fresh vector and checks the
// expectation, if any. The report is returned even when the expectation
// fails, so callers can log the observed state.
func (s *Scenario) Run() (*Report, error) {
	v := vec.New[int]()
	start := time.Now()
	for i, op := range s.Ops {
		var err error
		switch op.Do {
		case "push":
			err = v.Push(op.Value)
		case "pushclone":
			x := op.Value
			err = v.PushClone(&x)
		case "insert":
			// Validate scripted positions up front: the container treats
			// them as contract violations and panics.
			if op.Index < 0 || op.Index > v.Len() {
				err = fmt.Errorf("insert index %d out of range [0, %d]", op.Index, v.Len())
			} else {
				err = v.Insert(op.Index, op.Value)
			}
		case "erase":
			if op.Index < 0 || op.Index >= v.Len() {
				err = fmt.Errorf("erase index %d out of range [0, %d)", op.Index, v.Len())
			} else {
				err = v.Erase(op.Index)
			}
		case "pop":
			if v.Len() == 0 {
				err = fmt.Errorf("pop on empty vector")
			} else {
				v.PopBack()
			}
		case "reserve":
			err = v.Reserve(op.N)
		case "resize":
			err = v.Resize(op.N)
		default:
			return nil, fmt.Errorf("scenario %s: op %d: unknown operation %q", s.Name, i, op.Do)
		}
		if err != nil {
			return nil, fmt.Errorf("scenario %s: op %d (%s): %w", s.Name, i, op.Do, err)
		}
	}
	rep := &Report{
		Name:    s.Name,
		Len:     v.Len(),
		Cap:     v.Cap(),
		Elapsed: time.Since(start),
	}
	for x := range v.Values() {
		rep.Elements = append(rep.Elements, x)
	}
	return rep, s.check(rep)
}

func (s *Scenario) check(rep *Report) error {
	if s.Expect == nil {
		return nil
	}
	if s.Expect.Len != nil && *s.Expect.Len != rep.Len {
		return fmt.Errorf("scenario %s: expected len %d, got %d", s.Name, *s.Expect.Len, rep.Len)
	}
	if s.Expect.Cap != nil && *s.Expect.Cap != rep.Cap {
		return fmt.Errorf("scenario %s: expected cap %d, got %d", s.Name, *s.Expect.Cap, rep.Cap)
	}
	if s.Expect.Elements != nil && !slices.Equal(s.Expect.Elements, rep.Elements) {
		return fmt.Errorf("scenario %s: expected elements %v, got %v", s.Name, s.Expect.Elements, rep.Elements)
	}
	return nil
}
