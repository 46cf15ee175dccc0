// Package chunker splits an uploaded document into retrievable text
// segments. The stand-in produces fixed, deterministic output; a real parser
// plugs in behind the same interface.
package chunker

// ChunkData is one text segment produced by a chunker. Embedding may be
// supplied directly by the chunker; when empty, the ingestion pipeline
// embeds the text itself.
type ChunkData struct {
	Text      string
	Embedding []float64
	Metadata  map[string]interface{}
}

// Chunker splits a document into chunk data.
type Chunker interface {
	Chunk(filename string) []ChunkData
}

// StaticChunker is the parsing stand-in: every document decomposes into the
// same two contract clauses, embeddings included.
type StaticChunker struct{}

// NewStaticChunker creates the stand-in chunker.
func NewStaticChunker() *StaticChunker {
	return &StaticChunker{}
}

// Chunk returns two fixed clauses tagged with the source filename.
func (c *StaticChunker) Chunk(filename string) []ChunkData {
	return []ChunkData{
		{
			Text:      "Termination clause: Either party may terminate with 90 days' notice.",
			Embedding: []float64{0.12, -0.45, 0.91, 0.33},
			Metadata:  map[string]interface{}{"page": 2, "contract_name": filename},
		},
		{
			Text:      "Liability cap: Limited to 12 months' fees.",
			Embedding: []float64{0.01, 0.22, -0.87, 0.44},
			Metadata:  map[string]interface{}{"page": 5, "contract_name": filename},
		},
	}
}
