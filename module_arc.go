//go:build !linkedlists_noarc

package linkedlists

import "github.com/npillmayer/linkedlists/persistent/arc"

func arcModule() []Module {
	return []Module{{Name: "arc", Version: arc.Version()}}
}
