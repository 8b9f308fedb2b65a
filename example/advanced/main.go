package main

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/siherrmann/ragformat"
	"github.com/siherrmann/ragformat/helper"
	"github.com/siherrmann/ragformat/model"
)

const payload = `{
	"query_mode": "hybrid",
	"entities": [
		{"entity": "Dr. Smith", "type": "PERSON", "description": "Author of the paper", "rank": 4},
		{"entity": "Graph RAG", "type": "CONCEPT", "description": "Retrieval over knowledge graphs", "rank": 2}
	],
	"relations": [
		{"entity1": "Dr. Smith", "entity2": "Graph RAG", "description": "Dr. Smith studies Graph RAG", "keywords": "research", "weight": 0.8}
	],
	"chunks": [
		{"reference_id": "1", "content": "Introduction to the topic.", "file_path": "research_paper.pdf", "chunk_id": "chunk-001",
		 "page_idx": 1, "section": "Introduction", "author": "Dr. Smith", "confidence": 0.95},
		{"reference_id": "1", "content": "Methodology description.", "file_path": "research_paper.pdf", "chunk_id": "chunk-002",
		 "page_idx": 5, "section": "Methodology", "author": "Dr. Smith", "confidence": 0.88}
	],
	"references": [
		{"reference_id": "1", "file_path": "research_paper.pdf"}
	],
	"keywords": {"high_level": ["knowledge graphs"], "low_level": ["Dr. Smith"]},
	"entity_id_map": {"Dr. Smith": "person-0001"}
}`

func main() {
	_ = godotenv.Load()

	f, err := ragformat.NewFormatter(&helper.Configuration{
		LogLevel:         "debug",
		ExtraChunkFields: []string{"section"},
	})
	if err != nil {
		log.Fatalf("Failed to create formatter: %v", err)
	}

	response, err := f.FormatJSON([]byte(payload), "page_idx", "author", "confidence")
	if err != nil {
		log.Fatalf("Failed to format payload: %v", err)
	}

	for _, entity := range response.Data.Entities {
		fmt.Printf("Entity %s (%s) original id: %q\n", entity.EntityName, entity.EntityType, entity.OriginalID)
	}

	for i, chunk := range response.Data.Chunks {
		fmt.Printf("\nChunk %d:\n", i+1)
		fmt.Printf("  Section: %v\n", chunk["section"])
		fmt.Printf("  Page: %v\n", chunk["page_idx"])
		fmt.Printf("  Author: %v\n", chunk["author"])
		fmt.Printf("  Confidence: %v\n", chunk["confidence"])

		b, err := chunk.Marshal()
		if err != nil {
			log.Fatalf("Failed to encode chunk: %v", err)
		}
		fmt.Printf("  JSON: %s\n", b)
	}

	// A non object chunk rejects the whole call
	_, err = f.FormatRaw(nil, nil, []interface{}{"not a chunk"}, nil, model.QueryModeNaive)
	fmt.Printf("\nInvalid input: %v\n", err)

	out, err := json.MarshalIndent(response.Metadata, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode metadata: %v", err)
	}
	fmt.Printf("\n%s\n", out)

	fmt.Println("\nAdvanced example completed successfully!")
}
