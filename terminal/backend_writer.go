package terminal

import "io"

// writerBackend targets a plain io.Writer: piped output, capture in
// tests. No raw mode, no input, fixed reported size.
type writerBackend struct {
	out    io.Writer
	width  int
	height int
}

func (b *writerBackend) Init() error { return nil }
func (b *writerBackend) Fini()       {}

func (b *writerBackend) Size() (int, int) {
	return b.width, b.height
}

func (b *writerBackend) Write(p []byte) (int, error) {
	return b.out.Write(p)
}

func (b *writerBackend) Read(stopCh <-chan struct{}) ([]byte, error) {
	<-stopCh
	return nil, nil
}

func (b *writerBackend) SetResizeHandler(func(width, height int)) {}
