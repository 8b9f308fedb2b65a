package main

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/siherrmann/ragformat"
	"github.com/siherrmann/ragformat/model"
)

func main() {
	_ = godotenv.Load()

	f, err := ragformat.NewFormatter(nil)
	if err != nil {
		log.Fatalf("Failed to create formatter: %v", err)
	}

	chunks := []model.Record{
		{
			"reference_id": "1",
			"content":      "This is content from page 5.",
			"file_path":    "document1.pdf",
			"chunk_id":     "chunk-001",
			"page_idx":     5,
		},
		{
			"reference_id": "1",
			"content":      "This chunk is missing page_idx.",
			"file_path":    "document1.pdf",
			"chunk_id":     "chunk-002",
		},
	}

	qc := &model.QueryContext{
		Chunks:    chunks,
		Mode:      model.QueryModeNaive,
		EntityIDs: model.NoRemap[string](),
	}

	// Plain four field chunks
	response := f.Format(qc)
	fmt.Printf("Status: %s\n", response.Status)
	fmt.Printf("Number of chunks: %d\n", len(response.Data.Chunks))
	fmt.Printf("First chunk: %v\n\n", response.Data.Chunks[0])

	// Chunks with page_idx, null where missing
	response = f.Format(qc, "page_idx")
	for i, chunk := range response.Data.Chunks {
		fmt.Printf("Chunk %d: %s (page index: %v)\n", i+1, chunk["content"], chunk["page_idx"])
	}

	out, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode response: %v", err)
	}
	fmt.Printf("\n%s\n", out)

	fmt.Println("\nBasic example completed successfully!")
}
