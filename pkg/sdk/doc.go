// Package lexdex provides a Go client for the lexdex legal research API.
//
// The client wraps the HTTP surface with typed requests and responses:
//
//	client := lexdex.New("http://localhost:8080", lexdex.WithAPIKey("secret"))
//	answer, err := client.Ask(ctx, "What are recent Iran sanctions cases?")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(answer.Answer)
//	for _, doc := range answer.Documents {
//	    fmt.Println("-", doc.Title)
//	}
package lexdex
