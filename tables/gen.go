//go:build ignore

// Gen writes the built-in tables to testdata in the JSON format read
// by LoadJSON.
//
//	go run gen.go [dir]
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/unixdj/qrmatrix/coding"
	"github.com/unixdj/qrmatrix/tables"
)

type ec struct {
	Total               int `json:"total_codewords"`
	DataCodewords       int `json:"data_codewords"`
	ECCodewordsPerBlock int `json:"ec_codewords_per_block"`
	Group1Blocks        int `json:"group1_blocks"`
	Group1Data          int `json:"group1_data_codewords"`
	Group2Blocks        int `json:"group2_blocks"`
	Group2Data          int `json:"group2_data_codewords"`
}

var (
	levels = []coding.Level{coding.L, coding.M, coding.Q, coding.H}
	modes  = []coding.Mode{coding.Numeric, coding.Alphanumeric, coding.Byte, coding.Kanji}
	ranges = [][2]coding.Version{{1, 9}, {10, 26}, {27, 40}}
)

func write(dir, name string, v any) {
	b, err := json.MarshalIndent(v, "", " ")
	if err != nil {
		log.Fatalln(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), append(b, '\n'), 0o644); err != nil {
		log.Fatalln(err)
	}
}

func main() {
	log.SetFlags(0)
	dir := "testdata"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}
	t := tables.Standard
	caps := map[string]map[string]map[string]int{}
	ecs := map[string]map[string]ec{}
	align := map[string][]int{}
	lo, hi := t.Versions()
	for v := lo; v <= hi; v++ {
		key := strconv.Itoa(int(v))
		caps[key] = map[string]map[string]int{}
		ecs[key] = map[string]ec{}
		for _, l := range levels {
			lc := map[string]int{}
			for _, m := range modes {
				lc[m.String()], _ = t.Capacity(v, l, m)
			}
			caps[key][l.String()] = lc

			info, _ := t.ECInfo(v, l)
			short := info.DataCodewords / info.Blocks
			long := info.DataCodewords % info.Blocks
			e := ec{
				Total:               info.DataCodewords + info.Blocks*info.ECCodewordsPerBlock,
				DataCodewords:       info.DataCodewords,
				ECCodewordsPerBlock: info.ECCodewordsPerBlock,
				Group1Blocks:        info.Blocks - long,
				Group1Data:          short,
			}
			if long != 0 {
				e.Group2Blocks, e.Group2Data = long, short+1
			}
			ecs[key][l.String()] = e
		}
		a, _ := t.AlignmentCenters(v)
		if a == nil {
			a = []int{}
		}
		align[key] = a
	}
	widths := map[string]map[string]int{}
	for _, r := range ranges {
		wm := map[string]int{}
		for _, m := range modes {
			wm[m.String()], _ = t.CountBits(r[0], m)
		}
		widths[fmt.Sprintf("%d-%d", r[0], r[1])] = wm
	}

	write(dir, tables.VersionFile, caps)
	write(dir, tables.BitModesFile, widths)
	write(dir, tables.ECFile, ecs)
	write(dir, tables.AlignmentFile, align)
}
