//go:build !linkedlists_norc

package linkedlists

import "github.com/npillmayer/linkedlists/persistent/rc"

func rcModule() []Module {
	return []Module{{Name: "rc", Version: rc.Version()}}
}
