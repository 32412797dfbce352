// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tables

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"

	"github.com/unixdj/qrmatrix/coding"
)

// File names read by LoadJSON.
const (
	VersionFile   = "thonky_qr_version.json"
	BitModesFile  = "thonky_qr_bit_modes.json"
	ECFile        = "thonky_qr_ec_codewords.json"
	AlignmentFile = "thonky_qr_alignment_pattern_locations.json"

	// alignmentFileAlt is read when AlignmentFile does not exist.
	alignmentFileAlt = "thonky_qr_aligment_pattern_locations.json"
)

var (
	levelNames = [4]string{"L", "M", "Q", "H"}
	modeNames  = [4]string{"numeric", "alphanumeric", "byte", "kanji"}
)

type ecJSON struct {
	Total               int `json:"total_codewords"`
	DataCodewords       int `json:"data_codewords"`
	ECCodewordsPerBlock int `json:"ec_codewords_per_block"`
	Group1Blocks        int `json:"group1_blocks"`
	Group1Data          int `json:"group1_data_codewords"`
	Group2Blocks        int `json:"group2_blocks"`
	Group2Data          int `json:"group2_data_codewords"`
}

func readJSON(fsys fs.FS, name string, v any) error {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("tables: %s: %w", name, err)
	}
	return nil
}

// LoadJSON reads tables from the four JSON files in fsys named
// VersionFile, BitModesFile, ECFile and AlignmentFile.  Versions are
// keyed by their decimal number and must run from 1 without gaps.
// Character count width ranges must not overlap.  The alignment file
// is also found under the name thonky_qr_aligment_pattern_locations.json.
func LoadJSON(fsys fs.FS) (*Table, error) {
	var (
		caps  map[string]map[string]map[string]int
		modes map[string]map[string]int
		ecs   map[string]map[string]ecJSON
		align map[string][]int
	)
	for _, f := range []struct {
		name, alt string
		v         any
	}{
		{VersionFile, "", &caps},
		{BitModesFile, "", &modes},
		{ECFile, "", &ecs},
		{AlignmentFile, alignmentFileAlt, &align},
	} {
		err := readJSON(fsys, f.name, f.v)
		if f.alt != "" && errors.Is(err, fs.ErrNotExist) {
			err = readJSON(fsys, f.alt, f.v)
		}
		if err != nil {
			return nil, err
		}
	}

	t := new(Table)
	for v := 1; ; v++ {
		key := strconv.Itoa(v)
		vc, ok := caps[key]
		if !ok {
			break
		}
		var e entry
		for l, ln := range levelNames {
			lc, ok := vc[ln]
			if !ok {
				return nil, fmt.Errorf("tables: %s: no level %s in version %d",
					VersionFile, ln, v)
			}
			for m, mn := range modeNames {
				if e.capacity[l][m], ok = lc[mn]; !ok {
					return nil, fmt.Errorf("tables: %s: no %s capacity for %d-%s",
						VersionFile, mn, v, ln)
				}
			}
			ec, ok := ecs[key][ln]
			if !ok {
				return nil, fmt.Errorf("tables: %s: no entry for %d-%s",
					ECFile, v, ln)
			}
			e.ec[l] = coding.ECInfo{
				DataCodewords:       ec.DataCodewords,
				ECCodewordsPerBlock: ec.ECCodewordsPerBlock,
				Blocks:              ec.Group1Blocks + ec.Group2Blocks,
			}
		}
		a, ok := align[key]
		if !ok {
			return nil, fmt.Errorf("tables: %s: no entry for version %d",
				AlignmentFile, v)
		}
		if len(a) > 0 {
			e.align = a
		}
		t.v = append(t.v, e)
	}
	if len(t.v) == 0 {
		return nil, fmt.Errorf("tables: %s: no version 1", VersionFile)
	}
	if len(t.v) != len(caps) {
		return nil, fmt.Errorf("tables: %s: versions not contiguous from 1",
			VersionFile)
	}

	for k, wm := range modes {
		lo, hi, ok := strings.Cut(k, "-")
		from, err1 := strconv.Atoi(lo)
		to, err2 := strconv.Atoi(hi)
		if !ok || err1 != nil || err2 != nil || from > to {
			return nil, fmt.Errorf("tables: %s: invalid version range %q",
				BitModesFile, k)
		}
		w := widthRange{min: coding.Version(from), max: coding.Version(to)}
		for m, mn := range modeNames {
			if w.bits[m], ok = wm[mn]; !ok {
				return nil, fmt.Errorf("tables: %s: no %s width for %s",
					BitModesFile, mn, k)
			}
		}
		t.widths = append(t.widths, w)
	}
	sort.Slice(t.widths, func(i, j int) bool {
		return t.widths[i].min < t.widths[j].min
	})
	for i := 1; i < len(t.widths); i++ {
		if prev, w := t.widths[i-1], t.widths[i]; w.min <= prev.max {
			return nil, fmt.Errorf("tables: %s: overlapping version ranges %d-%d and %d-%d",
				BitModesFile, prev.min, prev.max, w.min, w.max)
		}
	}
	return t, nil
}
