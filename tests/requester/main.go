package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"time"
)

const baseURL = "http://localhost:8080/api/v1/products/"

// usage: requester <hot_product_id>
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: requester <hot_product_id>")
		os.Exit(1)
	}
	hotID := os.Args[1]

	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(func() { doRequest(hotID) })
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func randomUUID() string {
	const hex = "0123456789abcdef"
	b := make([]byte, 36)
	for i := range b {
		switch i {
		case 8, 13, 18, 23:
			b[i] = '-'
		default:
			b[i] = hex[rand.Intn(len(hex))]
		}
	}
	return string(b)
}

// Most requests hit one product so the catalog cache stays warm; the rest miss.
func doRequest(hotID string) {
	id := hotID
	if rand.Intn(5) == 0 {
		id = randomUUID()
	}

	url := baseURL + id
	resp, err := http.Get(url)
	if err != nil {
		fmt.Println("request failed:", err)
		return
	}
	fmt.Println("GET", url, "->", resp.Status)
	resp.Body.Close()
}
