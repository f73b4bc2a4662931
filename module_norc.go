//go:build linkedlists_norc

package linkedlists

func rcModule() []Module {
	return nil
}
