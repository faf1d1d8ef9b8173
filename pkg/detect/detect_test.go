package detect

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPerfScriptByEventName(t *testing.T) {
	buf := []byte("myapp 1234 1000.000001: cycles:\n\tff0000 main+0x10 (myapp)\n")
	assert.Equal(t, PerfScript, Detect(buf))
}

func TestDetectPerfScriptByHexAddrAndParen(t *testing.T) {
	buf := []byte("\tffffffff81000000 do_syscall_64+0x10 (/lib/modules/vmlinux)\n")
	assert.Equal(t, PerfScript, Detect(buf))
}

func TestDetectGenericFallback(t *testing.T) {
	buf := []byte("main\nrun\nhandle\n")
	assert.Equal(t, Generic, Detect(buf))
}

func TestDetectEmptyBufferIsGeneric(t *testing.T) {
	assert.Equal(t, Generic, Detect(nil))
}

func TestDetectOnlyScansFirst128NonBlankLines(t *testing.T) {
	lines := make([]string, 0, 200)
	for i := 0; i < 130; i++ {
		lines = append(lines, "frame")
	}
	lines = append(lines, "1234 1000.0: cycles:")
	buf := []byte(strings.Join(lines, "\n") + "\n")
	assert.Equal(t, Generic, Detect(buf))
}

func TestDialectString(t *testing.T) {
	assert.Equal(t, "perf-script", PerfScript.String())
	assert.Equal(t, "generic", Generic.String())
}
