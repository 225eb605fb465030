package verilog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/OpenTraceNetlist/pkg/netlist"
)

const halfAdder = `
// Half adder built from library gates.
module ha(a, b, s, c);
  input a, b;
  output s, c;

  XOR2 x1 (.A(a), .B(b), .Y(s));
  AND2 a1 (.A(a), .B(b), .Y(c));
endmodule
`

func mustParse(t *testing.T, source string) *SourceFile {
	t.Helper()
	p, err := NewParser()
	require.NoError(t, err)
	f, err := p.ParseString(source)
	require.NoError(t, err)
	return f
}

func TestParseHalfAdder(t *testing.T) {
	f := mustParse(t, halfAdder)
	require.Len(t, f.Modules, 1)

	m := f.Modules[0]
	assert.Equal(t, "ha", m.Name)
	require.Len(t, m.Ports, 4)
	assert.Equal(t, "a", m.Ports[0].Name)

	var insts []*Instantiation
	for _, item := range m.Items {
		if item.Inst != nil {
			insts = append(insts, item.Inst)
		}
	}
	require.Len(t, insts, 2)
	assert.Equal(t, "XOR2", insts[0].Cell)
	assert.Equal(t, "x1", insts[0].Name)
	require.Len(t, insts[0].Conns, 3)
	require.NotNil(t, insts[0].Conns[0].Named)
	assert.Equal(t, "A", insts[0].Conns[0].Named.Port)
	assert.Equal(t, "a", insts[0].Conns[0].Named.Net)
}

func TestParseANSIHeader(t *testing.T) {
	f := mustParse(t, `
module buf1(input a, output y);
  BUF b1 (.A(a), .Y(y));
endmodule
`)
	m := f.Modules[0]
	assert.Equal(t, "input", m.Ports[0].Dir)
	assert.Equal(t, "output", m.Ports[1].Dir)
}

func TestParseErrors(t *testing.T) {
	p, err := NewParser()
	require.NoError(t, err)

	for name, source := range map[string]string{
		"not verilog":      "entity foo is end foo;",
		"missing semi":     "module m(a) input a; endmodule",
		"unclosed module":  "module m(a); input a;",
		"dangling connect": "module m(a); input a; BUF b1 (.A(a);  endmodule",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := p.ParseString(source)
			require.Error(t, err)
			var ierr *InputError
			assert.ErrorAs(t, err, &ierr)
		})
	}
}

func TestCompileHalfAdder(t *testing.T) {
	nl, err := Compile(mustParse(t, halfAdder))
	require.NoError(t, err)

	assert.Equal(t, "ha", nl.Name())
	assert.Len(t, nl.Instances(), 2)
	assert.Len(t, nl.Nets(), 4)
	assert.Len(t, nl.Inputs(), 2)
	assert.Len(t, nl.Outputs(), 2)
	require.NoError(t, nl.Verify())

	x1, ok := nl.Instance("x1")
	require.True(t, ok)
	require.Equal(t, 2, x1.NumInputs())
	assert.Equal(t, netlist.Identifier("a"), x1.Input(0).Name())
	assert.Equal(t, netlist.Identifier("s"), x1.Output(0).Name())
}

func TestCompilePositionalConnections(t *testing.T) {
	nl, err := Compile(mustParse(t, `
module m(a, b, y);
  input a, b;
  output y;
  AND2 g1 (a, b, y);
endmodule
`))
	require.NoError(t, err)
	require.NoError(t, nl.Verify())

	g1, ok := nl.Instance("g1")
	require.True(t, ok)
	assert.Equal(t, netlist.Identifier("a"), g1.Input(0).Name())
	assert.Equal(t, netlist.Identifier("b"), g1.Input(1).Name())
	assert.Equal(t, netlist.Identifier("y"), g1.Output(0).Name())
}

func TestCompileAssignBecomesBuffer(t *testing.T) {
	nl, err := Compile(mustParse(t, `
module m(a, y);
  input a;
  output y;
  assign y = a;
endmodule
`))
	require.NoError(t, err)
	require.NoError(t, nl.Verify())
	require.Len(t, nl.Instances(), 1)
	assert.Equal(t, "BUF", nl.Instances()[0].Cell().Name)
}

func TestCompileUnknownCellInference(t *testing.T) {
	nl, err := Compile(mustParse(t, `
module m(a, b, y);
  input a, b;
  output y;
  wire w;
  LUT2 l1 (.I0(a), .I1(b), .O(w));
  BUF b1 (.A(w), .Y(y));
endmodule
`))
	require.NoError(t, err)
	require.NoError(t, nl.Verify())

	l1, ok := nl.Instance("l1")
	require.True(t, ok)
	assert.Equal(t, []string{"I0", "I1"}, l1.Cell().Inputs)
	assert.Equal(t, []string{"O"}, l1.Cell().Outputs)
	assert.False(t, l1.IsSeq())
}

func TestCompileXilinxOverrides(t *testing.T) {
	source := `
module m(a, y);
  input a;
  output y;
  INV i1 (.I(a), .O(y));
endmodule
`
	// Default library naming rejects the Xilinx port names.
	_, err := Compile(mustParse(t, source))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no port")

	// With the override the same source compiles.
	nl, err := CompileOverrides(mustParse(t, source), XilinxOverrides)
	require.NoError(t, err)
	require.NoError(t, nl.Verify())
	i1, ok := nl.Instance("i1")
	require.True(t, ok)
	assert.Equal(t, []string{"I"}, i1.Cell().Inputs)
}

func TestCompileDiagnostics(t *testing.T) {
	for name, tc := range map[string]struct {
		source string
		want   string
	}{
		"undeclared signal": {
			source: "module m(a); input a; BUF b1 (.A(a), .Y(zz)); endmodule",
			want:   "undeclared signal",
		},
		"double driver": {
			source: `module m(a, b); input a, b; wire w;
BUF b1 (.A(a), .Y(w)); BUF b2 (.A(b), .Y(w)); endmodule`,
			want: "already driven",
		},
		"vector signal": {
			source: "module m(a); input a; wire [3:0] w; endmodule",
			want:   "vector signals are not supported",
		},
		"inout port": {
			source: "module m(a); inout a; endmodule",
			want:   "inout ports are not supported",
		},
		"no direction": {
			source: "module m(a); wire a; endmodule",
			want:   "no direction",
		},
		"bad cell port": {
			source: "module m(a); input a; BUF b1 (.Q(a)); endmodule",
			want:   "no port",
		},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Compile(mustParse(t, tc.source))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestWriteRoundTrip(t *testing.T) {
	nl, err := Compile(mustParse(t, halfAdder))
	require.NoError(t, err)

	text := Write(nl)
	assert.True(t, strings.HasPrefix(text, "module ha(a, b, s, c);"), "header: %q", text)
	assert.Contains(t, text, "input a;")
	assert.Contains(t, text, "output s;")
	assert.Contains(t, text, "XOR2 x1 (.A(a), .B(b), .Y(s));")
	assert.Contains(t, text, "endmodule")

	// The rendered text parses and compiles back to an equivalent
	// netlist.
	again, err := Compile(mustParse(t, text))
	require.NoError(t, err)
	assert.Equal(t, nl.Len(), again.Len())
	require.NoError(t, again.Verify())
}

func TestWriteOmitsDisconnectedPorts(t *testing.T) {
	nl, err := Compile(mustParse(t, halfAdder))
	require.NoError(t, err)
	x1, _ := nl.Instance("x1")
	_, err = nl.Disconnect(x1, 0)
	require.NoError(t, err)

	text := Write(nl)
	assert.Contains(t, text, "XOR2 x1 (.B(b), .Y(s));")
}
