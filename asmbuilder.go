// Completion: 100% - Assembly text builder complete
package nocrt

import "strings"

// asmBuilder accumulates assembler text line by line.
type asmBuilder struct {
	sb strings.Builder
}

// Emit appends one instruction or directive followed by a newline.
func (b *asmBuilder) Emit(line string) {
	b.sb.WriteString(line)
	b.sb.WriteByte('\n')
}

// Raw appends pre-formatted text as-is. Empty text emits nothing.
func (b *asmBuilder) Raw(text string) {
	b.sb.WriteString(text)
}

func (b *asmBuilder) String() string {
	return b.sb.String()
}
