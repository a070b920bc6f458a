/*
github.com/tcrain/critplot - Plot data from criterion benchmark results.
Copyright (C) 2020 The project authors - tcrain

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.

*/

package parse

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/tcrain/critplot/config"
	"github.com/tcrain/critplot/logging"
	"github.com/tcrain/critplot/utils"
)

// criterion folders next to the saved baselines that are not baselines
var nonBaselineFolders = map[string]bool{
	"change": true,
	"report": true,
}

// DiscoverIDs returns the numeric benchmark ids found in the group folder, ascending.
func DiscoverIDs(dir, group string) ([]int, error) {
	folderPath := filepath.Join(dir, group)
	entries, err := os.ReadDir(folderPath)
	if err != nil {
		logging.Error(err)
		return nil, err
	}
	var ret []int
	for _, nxt := range entries {
		if !nxt.IsDir() {
			continue
		}
		id, err := strconv.Atoi(nxt.Name())
		if err != nil { // the group report folder
			continue
		}
		ret = append(ret, id)
	}
	if len(ret) == 0 {
		err = fmt.Errorf("%w in %v", ErrNoIDs, folderPath)
		logging.Error(err)
		return nil, err
	}
	sort.Ints(ret)
	return ret, nil
}

// DiscoverBaselines returns the saved baselines of a benchmark instance, these are
// the sub folders holding an estimates file.
func DiscoverBaselines(dir, group string, id int) ([]string, error) {
	folderPath := filepath.Join(dir, group, strconv.Itoa(id))
	entries, err := os.ReadDir(folderPath)
	if err != nil {
		logging.Error(err)
		return nil, err
	}
	var ret []string
	for _, nxt := range entries {
		if !nxt.IsDir() || nonBaselineFolders[nxt.Name()] {
			continue
		}
		if _, err := os.Stat(filepath.Join(folderPath, nxt.Name(), config.EstimatesFileName)); err != nil {
			logging.Warningf("skipping %v: %v", nxt.Name(), err)
			continue
		}
		ret = append(ret, nxt.Name())
	}
	utils.SortNatural(ret)
	return ret, nil
}
