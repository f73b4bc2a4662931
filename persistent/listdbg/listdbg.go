/*
Package listdbg implements helpers to debug persistent lists.

Persistent lists derived from each other share their nodes. Print renders a set of lists
as a tree, showing for every list the elements it owns on its own and the suffix it
shares with a list printed before it:

	lists
	├── a  (len=3, refs=1)
	│   ├── 3
	│   ├── 2
	│   └── 1
	└── b  (len=2, refs=2)
	    └── ⇢ 2 shared with a

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package listdbg

import (
	"fmt"
	"maps"
	"slices"

	"github.com/npillmayer/linkedlists/persistent"
	tp "github.com/xlab/treeprint"
)

// Print renders named lists as a tree. Lists are printed in order of their names.
func Print[T any, C any, PC persistent.RefCount[C]](lists map[string]*persistent.List[T, C, PC]) string {
	printer := tp.New()
	printer.SetValue("lists")
	var printed []string
	for _, name := range slices.Sorted(maps.Keys(lists)) {
		l := lists[name]
		branch := printer.AddBranch(fmt.Sprintf("%s  (len=%d, refs=%d)", name, l.Len(), l.RefCount()))
		shared, with := 0, ""
		for _, other := range printed {
			if k := l.Shared(lists[other]); k > shared {
				shared, with = k, other
			}
		}
		own := l.Len() - shared
		i := 0
		for elem := range l.All() {
			if i == own {
				break
			}
			branch.AddNode(fmt.Sprintf("%v", elem))
			i++
		}
		if shared > 0 {
			branch.AddNode(fmt.Sprintf("⇢ %d shared with %s", shared, with))
		}
		printed = append(printed, name)
	}
	return printer.String()
}
