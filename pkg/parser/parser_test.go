package parser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qubic/contractverify/pkg/ast"
)

const sampleSource = `
struct TESTCONState : public ContractBase
{
	uint64 TESTCONbalance;

	PUBLIC_FUNCTION(getBalance)
	void getBalance(const TESTCONgetBalance_input& input, TESTCONgetBalance_output& output)
	{
		output.balance = TESTCONbalance;
	}
};
`

func TestParseProducesFileCompound(t *testing.T) {
	p := New()
	file, err := p.Parse(context.Background(), []byte(sampleSource))
	require.NoError(t, err)
	require.NotNil(t, file)
	assert.Equal(t, ast.CompoundFile, file.Type)
	assert.NotEmpty(t, file.Children)
}

func TestParseFindsStateStruct(t *testing.T) {
	p := New()
	file, err := p.Parse(context.Background(), []byte(sampleSource))
	require.NoError(t, err)

	var found *ast.CompoundEntity
	for _, child := range file.Children {
		if comp, ok := child.(*ast.CompoundEntity); ok && comp.Type == ast.CompoundStruct {
			found = comp
			break
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, "TESTCONState", found.Name)
	require.Len(t, found.Inheritance, 1)
	assert.Equal(t, "ContractBase", found.Inheritance[0].BaseName)
}
