// Package client talks to the prompt console API.
//
// Plain endpoints are thin request/response calls on Client. Prompt
// generation can also be followed live: GenerateStream opens the streaming
// endpoint and reports fragments through Handlers, while Stream exposes the
// same sequence as a channel. Both return a Generation handle: Cancel
// stops it from any goroutine except a handler, where Stop is used instead.
//
//	c := client.New("http://localhost:8080/api", client.WithToken(token))
//	gen, err := c.GenerateStream(ctx, client.GenerateRequest{
//		Description: "poetry helper",
//		Language:    client.LanguageChinese,
//		Temperature: 0.7,
//	}, client.Handlers{
//		OnChunk: func(fragment, accumulated string) { fmt.Print(fragment) },
//		OnDone:  func(full, savedID string) { fmt.Println("\nsaved as", savedID) },
//		OnError: func(err error) { log.Println(err) },
//	})
//
// Nothing is retried. Every failure reaches the caller.
package client
