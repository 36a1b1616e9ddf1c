package handler

import (
	"bytes"
	"sync"
)

// Response bodies are small JSON documents; pooled buffers keep encoding
// off the allocator on the hot read endpoints.
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufferPool.Put(buf)
}
