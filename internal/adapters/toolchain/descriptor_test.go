package toolchain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDescriptor(t *testing.T) {
	vars := map[string]string{
		"HOME":       "/home/dev",
		"CARGO_HOME": "/opt/cargo",
	}
	lookup := func(k string) string { return vars[k] }

	tests := []struct {
		name string
		data string
		want []string
	}{
		{
			name: "rustup descriptor",
			data: `#!/bin/sh
# rustup shell setup
case ":${PATH}:" in
    *:"$HOME/.cargo/bin":*)
        ;;
    *)
        export PATH="$HOME/.cargo/bin:$PATH"
        ;;
esac
`,
			want: []string{"/home/dev/.cargo/bin"},
		},
		{
			name: "custom cargo home",
			data: "export PATH=\"${CARGO_HOME}/bin:${PATH}\"\n",
			want: []string{"/opt/cargo/bin"},
		},
		{
			name: "multiple assignments deduplicated",
			data: "PATH=/a/bin:$PATH\nexport PATH='/b/bin:/a/bin:$PATH';\n",
			want: []string{"/a/bin", "/b/bin"},
		},
		{
			name: "no assignment falls back to sibling bin",
			data: "# nothing here\n",
			want: []string{"/home/dev/.cargo/bin"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseDescriptor([]byte(tt.data), "/home/dev/.cargo", lookup)
			assert.Equal(t, tt.want, got)
		})
	}
}
