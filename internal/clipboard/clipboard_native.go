//go:build windows || ((darwin || linux || freebsd || openbsd || netbsd || dragonfly) && cgo)

package clipboard

import "golang.design/x/clipboard"

const (
	formatText  = clipboard.FmtText
	formatImage = clipboard.FmtImage
)

func backendInit() error { return clipboard.Init() }

func backendWrite(f clipboard.Format, b []byte) { clipboard.Write(f, b) }
