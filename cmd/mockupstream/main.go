package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sleepstars/openai-proxy/internal/mocks"
)

func main() {
	port := flag.String("port", "8001", "Port to run the server on")
	delay := flag.Duration("delay", 100*time.Millisecond, "Delay between streamed chunks")
	apiKey := flag.String("api-key", "", "Bearer token to require (empty accepts any)")
	flag.Parse()

	gin.SetMode(gin.ReleaseMode)
	mock := &mocks.OpenAIServer{ChunkDelay: *delay, APIKey: *apiKey}

	log.Printf("mock upstream listening on :%s", *port)
	if err := http.ListenAndServe(":"+*port, mock.Handler()); err != nil {
		log.Fatal(err)
	}
}
