package verilog

import (
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/pkg/errors"
)

// Parser parses structural Verilog source text.
type Parser struct {
	parser *participle.Parser[SourceFile]
}

// NewParser creates a new Verilog parser instance.
func NewParser() (*Parser, error) {
	parser, err := participle.Build[SourceFile](
		participle.Lexer(Lexer),
		participle.Elide("Comment", "Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build parser")
	}

	return &Parser{parser: parser}, nil
}

// Parse parses Verilog source from a reader.
func (p *Parser) Parse(r io.Reader) (*SourceFile, error) {
	file, err := p.parser.Parse("", r)
	if err != nil {
		return nil, &InputError{Msg: "parse error", Err: err}
	}
	return file, nil
}

// ParseString parses Verilog source from a string.
func (p *Parser) ParseString(input string) (*SourceFile, error) {
	file, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, &InputError{Msg: "parse error", Err: err}
	}
	return file, nil
}

// ParseFile parses Verilog source from a file path.
func (p *Parser) ParseFile(filename string) (*SourceFile, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, &InputError{Msg: "failed to open file", Err: err}
	}
	defer file.Close()

	return p.Parse(file)
}
