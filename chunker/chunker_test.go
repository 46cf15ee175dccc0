package chunker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticChunkerDeterministic(t *testing.T) {
	c := NewStaticChunker()
	first := c.Chunk("nda.pdf")
	second := c.Chunk("nda.pdf")
	assert.Equal(t, first, second)
}

func TestStaticChunkerOutput(t *testing.T) {
	chunks := NewStaticChunker().Chunk("msa.pdf")
	require.Len(t, chunks, 2)

	for _, chunk := range chunks {
		assert.NotEmpty(t, chunk.Text)
		assert.Len(t, chunk.Embedding, 4)
		assert.Equal(t, "msa.pdf", chunk.Metadata["contract_name"])
		assert.NotNil(t, chunk.Metadata["page"])
	}
}
