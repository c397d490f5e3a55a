// Package aoc is a small toolkit for solving Advent of Code puzzles: a
// bounds-checked Grid, a Graph with shortest- and longest-path searches, a
// few containers, and Run, which checks every solver against the sample in
// its doc comment before running it on the real input.
package aoc

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/kr/pretty"
	"golang.org/x/exp/maps"
)

// Sample is a worked example taken from a solver's doc comment.
type Sample struct {
	Input string
	Want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)\n?(?:[ \t]*\n)*(.*)$`)

// parseSample reads a want= line and the input below it. gofmt turns
// unindented sample lines into doc headings and lists, so samples are written
// as indented code blocks and the indent is removed here.
func parseSample(comment string) (Sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := Sample{
			Want:  strings.TrimSpace(m[1]),
			Input: dedent(m[2]),
		}
		return s, true
	}
	var zero Sample
	return zero, false
}

// dedent removes the leading whitespace shared by every non-blank line of s.
func dedent(s string) string {
	lines := strings.SplitAfter(s, "\n")
	indent, first := "", true
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		ws := l[:len(l)-len(strings.TrimLeft(l, " \t"))]
		if first {
			indent, first = ws, false
			continue
		}
		for !strings.HasPrefix(ws, indent) {
			indent = indent[:len(indent)-1]
		}
	}
	if indent == "" {
		return s
	}
	for i, l := range lines {
		lines[i] = strings.TrimPrefix(l, indent)
	}
	return strings.Join(lines, "")
}

// Samples collects the want= samples from the doc comments of the functions
// in the non-test .go files of fsys, keyed by function name. A
// sample without input reuses the previous input in the same file. A want
// of "???" marks a part with no sample.
func Samples(fsys fs.FS) (map[string]Sample, error) {
	names, err := fs.Glob(fsys, "*.go")
	if err != nil {
		return nil, err
	}
	fset := token.NewFileSet()
	samples := make(map[string]Sample)
	for _, name := range names {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		src, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, err
		}
		f, err := parser.ParseFile(fset, name, src, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("parsing %s to extract samples: %w", name, err)
		}
		var lastInput string
		for _, d := range f.Decls {
			fd, ok := d.(*ast.FuncDecl)
			if !ok || fd.Doc == nil {
				continue
			}
			for _, c := range fd.Doc.List {
				s, ok := parseSample(c.Text)
				if !ok {
					continue
				}
				s.Input = Or(s.Input, lastInput)
				lastInput = s.Input
				if s.Want != "???" {
					samples[fd.Name.Name] = s
				}
				break
			}
		}
	}
	return samples, nil
}

// Puzzle is the per-day state handed to solvers. Solver types embed a
// *Puzzle; Run fills it in before calling each part.
type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	solver  partSolver
	samples map[string]Sample
	cfg     Config
	log     *slog.Logger

	input []byte // fixed input from NewPuzzle
}

// NewPuzzle returns a Puzzle in sample mode whose input is always input.
// It is meant for tests.
func NewPuzzle(input string) *Puzzle {
	return &Puzzle{
		SampleMode: true,
		input:      []byte(input),
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func (p *Puzzle) Input() []byte {
	if p.input != nil {
		return p.input
	}
	if p.SampleMode {
		return []byte(p.Sample().Input)
	}
	return p.fileOrFetch(
		filepath.Join(p.cfg.InputDir, fmt.Sprint(p.year), fmt.Sprintf("%d.input", p.day.day)),
		fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", p.year, p.day.day),
	)
}

// Log returns the runner's logger.
func (p *Puzzle) Log() *slog.Logger {
	return p.log
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	s := bufio.NewScanner(bytes.NewReader(p.Input()))
	s.Buffer(nil, 1<<20)
	return s
}

// ForLinesY calls onLine for each line of input.
// The y value is the row number, starting with 0.
func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	if err := s.Err(); err != nil {
		log.Fatal(err)
	}
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

// Lines returns the lines of input.
func (p *Puzzle) Lines() []string {
	var lines []string
	p.ForLines(func(line string) { lines = append(lines, line) })
	return lines
}

// Blocks returns the input split into blank-line separated paragraphs.
func (p *Puzzle) Blocks() []string {
	text := strings.ReplaceAll(string(p.Input()), "\r\n", "\n")
	var out []string
	for _, b := range strings.Split(text, "\n\n") {
		if b = strings.Trim(b, "\n"); b != "" {
			out = append(out, b+"\n")
		}
	}
	return out
}

// Grid parses the input as a grid of ASCII characters. Malformed input is
// fatal.
func (p *Puzzle) Grid() Grid[byte] {
	g, err := ByteGrid(bytes.NewReader(p.Input()))
	if err != nil {
		log.Fatalf("parsing grid: %v", err)
	}
	return g
}

// Debugf pretty-prints to stderr when -debug is set, and only in sample
// mode.
func (p *Puzzle) Debugf(format string, args ...any) {
	if flagDebug && p.SampleMode {
		fmt.Fprintln(os.Stderr, pretty.Sprintf(format, args...))
	}
}

func (p *Puzzle) Sample() Sample {
	s, ok := p.samples[p.solver.Name]
	if !ok {
		log.Fatalf("no sample found for %v", p.solver.Name)
	}
	return s
}

func (p *Puzzle) hasSample() bool {
	_, ok := p.samples[p.solver.Name]
	return ok
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods finds the methods of x named D{day}p{part}. They must have
// the signature func() any.
func extractMethods(x any) map[int]day {
	v := reflect.ValueOf(x).Elem()
	if v.Kind() != reflect.Struct {
		log.Fatalf("Run: got %T; want pointer to struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m, ok := v.Method(i).Interface().(func() any)
		if !ok {
			log.Fatalf("%s has type %v; want func() any", mn, v.Method(i).Type())
		}
		d := Int(matches[1])
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: matches[2],
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days
}

var (
	flagCurDay     int
	flagPart       string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
	flagConfig     string
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
	flag.StringVar(&flagConfig, "config", "", "config file (default "+DefaultConfigPath()+")")
}

var initFlags = sync.OnceFunc(flag.Parse)

// runDay runs each part of day, sample first, and prints the answers to
// out. It reports false if a sample answer was wrong.
func runDay(out io.Writer, slvr any, p *Puzzle, day day) bool {
	p.day = day
	p.log.Info("running", "day", day.day)
	sr := reflect.ValueOf(slvr)
	sr.Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
	for _, ps := range day.parts {
		p.solver = ps
		if flagPart != "" && ps.Part != flagPart {
			continue
		}
		for _, sm := range []bool{true, false} {
			if !sm && flagOnlySample {
				continue
			} else if sm && (flagSkipSample || !p.hasSample()) {
				continue
			}
			p.SampleMode = sm
			if !sm {
				// Prime the input so fetching isn't timed.
				n := len(p.Input())
				p.log.Debug("input", "day", day.day, "size", humanize.Bytes(uint64(n)))
			}
			t0 := time.Now()
			got := ps.fn()
			took := time.Since(t0).Round(time.Microsecond)
			if sm {
				want := p.Sample().Want
				if fmt.Sprint(got) != want {
					p.log.Error("sample mismatch", "day", day.day, "part", ps.Part, "got", got, "want", want)
					return false
				}
				p.log.Info("sample ok", "day", day.day, "part", ps.Part, "got", got, "took", took)
				continue
			}
			fmt.Fprintf(out, "part %s: %v\n", ps.Part, got)
			p.log.Info("solved", "day", day.day, "part", ps.Part, "took", took)
		}
	}
	return true
}

// Run solves the puzzles of the given year. slvr must be a pointer to a
// struct embedding *Puzzle, with methods named D{day}p{part}. fsys holds the
// solver sources, from which the samples are read; typically it is an
// embed.FS of the package's own files.
func Run(year int, fsys fs.FS, slvr any) {
	initFlags()
	cfg, err := LoadConfig(flagConfig)
	if err != nil {
		log.Fatal(err)
	}
	logger := newLogger(os.Stderr, cfg, flagDebug)
	samples, err := Samples(fsys)
	if err != nil {
		log.Fatal(err)
	}
	days := extractMethods(slvr)
	p := &Puzzle{
		year:    year,
		samples: samples,
		cfg:     cfg,
		log:     logger,
	}

	if flagCurDay != -1 {
		day, ok := days[flagCurDay]
		if !ok {
			log.Fatalf("no day %d", flagCurDay)
		}
		if !runDay(os.Stdout, slvr, p, day) {
			os.Exit(1)
		}
		return
	}

	ok := true
	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, d := range dayNums {
		ok = runDay(os.Stdout, slvr, p, days[d]) && ok
	}
	if !ok {
		os.Exit(1)
	}
}

func (p *Puzzle) request(method, url string, body io.Reader) *http.Request {
	session, err := p.cfg.session()
	if err != nil {
		log.Fatalf("fetching %s: %v", url, err)
	}
	req := MustGet(http.NewRequest(method, url, body))
	req.AddCookie(&http.Cookie{Name: "session", Value: session})
	return req
}

func (p *Puzzle) fileOrFetch(filename, url string) []byte {
	if f, err := os.ReadFile(filename); err == nil {
		return f
	}

	p.log.Info("fetching input", "url", url)
	body := p.fetch(url)
	MustDo(os.MkdirAll(filepath.Dir(filename), 0700))
	MustDo(os.WriteFile(filename, body, 0644))
	return body
}

func (p *Puzzle) fetch(url string) []byte {
	res := MustGet(http.DefaultClient.Do(p.request("GET", url, nil)))
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		log.Fatalf("bad status fetching %s: %v", url, res.Status)
	}
	return MustGet(io.ReadAll(res.Body))
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// TrimPrefix returns s without prefix. A missing prefix is fatal.
func TrimPrefix(s, prefix string) string {
	s1, ok := strings.CutPrefix(s, prefix)
	if !ok {
		log.Fatalf("bad prefix: %q", s)
	}
	return s1
}

// Cut splits s around the first sep. A missing sep is fatal.
func Cut(s, sep string) (before, after string) {
	before, after, ok := strings.Cut(s, sep)
	if !ok {
		log.Fatalf("no %q in %q", sep, s)
	}
	return before, after
}

// Or returns the first non-zero element of list, or else the zero T.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
