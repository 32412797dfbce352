package main

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/unixdj/qrmatrix"
	"github.com/unixdj/qrmatrix/tables"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
)

var g = struct {
	scale   int             // scale
	border  int             // quiet zone
	palette *[2]color.Color // palette
	rev     bool            // reverse colours
	fn      string          // filename
	lev     qr.Level        // QR correction level
	format  int             // output file format
	verbose int             // trace verbosity
	tables  string          // JSON tables directory
	cx      int             // randr source X coordinate index in inc
	inc     [2]int          // randr source X,Y coordinate increments
	bg, fg  rgba            // colour
	colSet  bool            // colour set
	upper   bool            // uppercase
}{
	inc: [2]int{1, 1},
	bg:  rgba{0xff, 0xff, 0xff, 0xff},
	fg:  rgba{0x00, 0x00, 0x00, 0xff},
}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	prog := cl.Program()
	ul := make([]string, 1, 4)
	ul[0] = cl.UsageLine() + " [string ...]"
	ml := max(70-len("Usage: ")-1-len(prog), 0)
	for i := 0; len(ul[i]) > ml; i++ {
		s := ul[i]
		n := ml - 1
		for n > 0 && (s[n] != ' ' || s[n+1] != '[') {
			n--
		}
		ul = append(ul, s[n+1:])
		ul[i] = s[:max(n, 0)]
		ml = 60
	}
	fmt.Fprint(w, "QR code generator\nUsage: ", prog, " ",
		strings.Join(ul, "\n          "), `
If no string is given, data is read from standard input and the final
newline is stripped.  The whole string is encoded in a single mode, in
the smallest version that holds it, with mask pattern 0.

Defaults for -l, -t, -s, -m, -v and -T are read from the environment
variables QR_LEVEL, QR_FORMAT, QR_SCALE, QR_BORDER, QR_VERBOSE and
QR_TABLES, and from a .env file in the current directory.

`)
	var b bytes.Buffer
	cl.PrintOptions(&b)
	w.Write(b.Bytes())
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`qr version 0.9.0
Copyright (c) 2011 The Go Authors
Copyright (c) 2025 Vadim Vygonets`)
	os.Exit(0)
}

func flip() {
	g.inc[0] = -g.inc[0]
}

func rotate() {
	g.cx ^= 1
	m := g.inc[0] * g.inc[1]
	g.inc[0] *= m
	g.inc[1] *= -m
}

func verbose() {
	g.verbose++
}

type rgba struct {
	R, G, B, A uint8
}

func (c *rgba) String() string {
	switch {
	case *c == colours["black"]:
		return "black"
	case *c == colours["white"]:
		return "white"
	case c.A == 0xff:
		return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func (c *rgba) Set(s string, _ getopt.Option) error {
	v, err := parseColour(s)
	if err != nil {
		return err
	}
	*c = v
	g.colSet = true
	return nil
}

// parseColour parses a colour name or 3, 4, 6 or 8 hex digits,
// RGB with optional alpha.
func parseColour(s string) (rgba, error) {
	if c, ok := colours[strings.ToLower(strings.ReplaceAll(s, " ", ""))]; ok {
		return c, nil
	}
	var digits int
	switch len(s) {
	case 3, 4:
		digits = 1
	case 6, 8:
		digits = 2
	default:
		return rgba{}, fmt.Errorf("%q: bad colour spec", s)
	}
	v := [4]uint8{3: 0xff}
	for i := 0; i < len(s)/digits; i++ {
		n, err := strconv.ParseUint(s[i*digits:(i+1)*digits], 16, 8)
		if err != nil {
			return rgba{}, fmt.Errorf("%q: bad colour spec", s)
		}
		if digits == 1 {
			n *= 0x11
		}
		v[i] = uint8(n)
	}
	return rgba{v[0], v[1], v[2], v[3]}, nil
}

// colours holds the colour names accepted by -B and -F.
var colours = map[string]rgba{
	"black":     {0x00, 0x00, 0x00, 0xff},
	"white":     {0xff, 0xff, 0xff, 0xff},
	"red":       {0xff, 0x00, 0x00, 0xff},
	"green":     {0x00, 0xff, 0x00, 0xff},
	"blue":      {0x00, 0x00, 0xff, 0xff},
	"cyan":      {0x00, 0xff, 0xff, 0xff},
	"magenta":   {0xff, 0x00, 0xff, 0xff},
	"yellow":    {0xff, 0xff, 0x00, 0xff},
	"gray":      {0xbe, 0xbe, 0xbe, 0xff},
	"grey":      {0xbe, 0xbe, 0xbe, 0xff},
	"darkgreen": {0x00, 0x64, 0x00, 0xff},
	"navy":      {0x00, 0x00, 0x80, 0xff},
	"maroon":    {0xb0, 0x30, 0x60, 0xff},
	"orange":    {0xff, 0xa5, 0x00, 0xff},
	"purple":    {0xa0, 0x20, 0xf0, 0xff},
	"ivory":     {0xff, 0xff, 0xf0, 0xff},
	"none":      {0x00, 0x00, 0x00, 0x00},
}

var formats = []string{
	"png", "pngi", "pbm", "pbmi", "eps", "epsi",
	"utf8", "utf8i", "ascii", "asciii",
}

var encoders = [...]func(*qr.Code, io.Writer) error{
	(*qr.Code).EncodePNG,
	(*qr.Code).EncodePBM,
	(*qr.Code).EncodeEPS,
	(*qr.Code).EncodeText,
	(*qr.Code).EncodeASCII,
}

func formatIndex(s string) int {
	for i, v := range formats {
		if s == v {
			return i
		}
	}
	return -1
}

func parseFlags(cfg *config) {
	g.border = cfg.Border
	g.verbose = cfg.Verbose
	g.tables = cfg.Tables

	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.FlagLong(&g.bg, "background", 'B', `background colour; see -F`,
		"RGB[A]|name")
	getopt.FlagLong(&g.fg, "foreground", 'F', `foreground colour `+
		`as 3, 4, 6 or 8 hex digits or a colour name; `+
		`only for types png[i] and eps[i]`, "RGB[A]|name")
	getopt.Flag(opt(flip), 'f', `flip code horizontally; `+
		`to flip vertically, use "-frr"`).SetFlag()
	getopt.Flag(opt(rotate), 'r', `rotate code 90° counterclockwise; `+
		`-r and -f may be given multiple times, `+
		`order matters: "-fr" = "-rfrr" = "-rrrf"`).SetFlag()
	getopt.Flag(opt(verbose), 'v', `trace the encoding to standard `+
		`error; -vv: also per character classes and matrices`).SetFlag()
	getopt.Flag(&g.upper, 'i', `ignore case, convert input to uppercase`)
	getopt.Flag(&g.border, 'm', `quiet zone pixels`, "margin")
	fno := getopt.Flag(&g.fn, 'o', `output file, or "-" for `+
		`standard output`, "file")
	getopt.Flag(&g.tables, 'T', `read thonky_qr_*.json tables `+
		`from directory instead of the built-in ones`, "dir")
	lev := getopt.Enum('l',
		[]string{"l", "m", "q", "h", "L", "M", "Q", "H"}, cfg.Level,
		"error correction level, lowest to highest", "l|m|q|h")
	scale := getopt.Unsigned('s', uint64(cfg.Scale),
		&(getopt.UnsignedLimit{Base: 0, Bits: 28, Min: 1, Max: 1 << 28}),
		`image pixels (type eps[i]: points) per QR module ("pixel"); `+
			`ignored for types utf8[i] and ascii[i]`, "scale")
	ff := getopt.Enum('t', formats, cfg.Format, `output format, one of: `+
		strings.Join(formats, ", ")+
		`; types with "i" appended have colours inverted; `+
		`if no -o is given and standard output is a TTY, `+
		`default is utf8, otherwise png`, "type")

	getopt.Parse()
	if g.border < 0 {
		fmt.Fprintln(os.Stderr, "-m must not be negative")
		usage()
	}
	g.scale = int(*scale)
	g.lev = qr.Level(strings.Index("lmqhLMQH", *lev) & 3)
	if *ff == "" {
		if !fno.Seen() && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			*ff = "utf8"
		} else {
			*ff = "png"
		}
	}
	i := formatIndex(*ff)
	g.format = i >> 1
	g.rev = i&1 != 0
	if g.fn == "-" {
		g.fn = ""
	}
	if g.colSet {
		g.palette = &[2]color.Color{color.RGBA(g.bg), color.RGBA(g.fg)}
	}
}

func main() {
	log.SetFlags(0)
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalln(err)
	}
	parseFlags(cfg)

	var s string
	if args := getopt.Args(); len(args) != 0 {
		s = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			log.Fatalln(err)
		}
		s, _ = strings.CutSuffix(
			strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}
	if g.upper {
		s = strings.ToUpper(s)
	}

	var opts []qr.Option
	if g.tables != "" {
		t, err := tables.LoadJSON(os.DirFS(g.tables))
		if err != nil {
			log.Fatalln(err)
		}
		opts = append(opts, qr.WithTables(t))
	}
	if g.verbose > 0 {
		opts = append(opts, qr.WithTrace(g.verbose, os.Stderr))
	}
	c, err := qr.Encode(s, g.lev, opts...)
	if err != nil {
		log.Fatalln(err)
	}
	write(c)
}

func write(c *qr.Code) {
	open := g.fn != ""
	var w = os.Stdout
	if open {
		var err error
		if w, err = os.OpenFile(g.fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
			0666); err != nil {
			log.Fatalln(err)
		}
	}
	c = randr(c)
	c.Scale = g.scale
	c.Border = g.border
	c.Palette = g.palette
	c.Reverse = g.rev
	err := encoders[g.format](c, w)
	if open && err == nil {
		err = w.Close()
	}
	if err != nil {
		log.Fatalln(err)
	}
}

// randr rotates and reflects c.
func randr(c *qr.Code) *qr.Code {
	cx, inc := g.cx, g.inc
	if cx == 0 && inc == [2]int{1, 1} {
		return c
	}
	siz, stride := c.Size, c.Stride
	b := make([]byte, siz*stride)
	for y := 0; y < siz; y++ {
		for x := 0; x < siz; x++ {
			p := [2]int{x, y}
			for i, d := range inc {
				if d < 0 {
					p[i] = siz - 1 - p[i]
				}
			}
			if c.Black(p[cx], p[cx^1]) {
				b[y*stride+x/8] |= 0x80 >> (x & 7)
			}
		}
	}
	c.Bitmap = b
	return c
}
