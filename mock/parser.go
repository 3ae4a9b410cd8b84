package mock

import "github.com/fwojciec/readmegen"

var _ readmegen.Parser = (*Parser)(nil)

// Parser is a mock implementation of readmegen.Parser.
type Parser struct {
	ParseFn func(name string, src []byte) (*readmegen.Document, error)
}

func (p *Parser) Parse(name string, src []byte) (*readmegen.Document, error) {
	return p.ParseFn(name, src)
}
