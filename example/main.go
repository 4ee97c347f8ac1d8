package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/theflywheel/hashdict"
	"github.com/theflywheel/hashdict/internal/wordcount"
)

const text = `It was the best of times, it was the worst of times,
it was the age of wisdom, it was the age of foolishness`

func main() {
	// Clean up previous example
	os.Remove("example.dict")

	d := hashdict.NewString[int64]()
	words, err := wordcount.Count(strings.NewReader(text), d, wordcount.DefaultOptions)
	if err != nil {
		log.Fatalf("Failed to count words: %v", err)
	}
	fmt.Printf("Counted %d words, %d distinct\n", words, d.Len())

	for _, threshold := range []int64{1, 2, 4} {
		fmt.Printf("Words repeated at least %d times: %d\n", threshold, hashdict.CountWithMinValue(d, threshold))
	}

	// Strict and auto-vivifying access
	if _, err := d.Get("dickens"); err != nil {
		fmt.Println("dickens:", err)
	}
	*d.GetOrInsertDefault("dickens") += 1
	v, _ := d.Get("dickens")
	fmt.Printf("Updated dickens => %d\n", v)

	if err := hashdict.Save("example.dict", d, hashdict.Int64Codec{}); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	loaded := hashdict.NewString[int64]()
	if err := hashdict.Load("example.dict", loaded, hashdict.Int64Codec{}); err != nil {
		log.Fatalf("Failed to load: %v", err)
	}
	fmt.Println("Reloaded dictionary equal:", hashdict.Equal(d, loaded))

	other := hashdict.NewString[int64]()
	other.Insert("times", 100)
	other.Insert("wisdom", 100)
	common := d.Intersection(other)
	for k, v := range common.All() {
		fmt.Printf("Common word %q => %d\n", k, v)
	}

	fmt.Println("Example completed successfully")
}
