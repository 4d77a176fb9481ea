package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"novelverse/internal/catalog"
	"novelverse/internal/catalogrpc"
	"novelverse/pkg/models"
)

const (
	defaultBaseURL  = "http://localhost:8080"
	defaultFeedAddr = "localhost:7070"
)

type novelListResponse struct {
	Total int                   `json:"total"`
	Items []models.NovelSummary `json:"items"`
}

func main() {
	global := flag.NewFlagSet("novelverse", flag.ExitOnError)
	baseURL := global.String("api", defaultBaseURL, "API base URL")
	if err := global.Parse(os.Args[1:]); err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	args := global.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	ctx := context.Background()
	cmd := args[0]
	sub := ""
	rest := []string{}
	if len(args) > 1 {
		sub = args[1]
		rest = args[2:]
	}

	client := &http.Client{Timeout: 15 * time.Second}

	switch cmd {
	case "novels":
		handleNovels(ctx, client, *baseURL, sub, rest)
	case "review":
		handleReview(ctx, client, *baseURL, sub, rest)
	case "auth":
		handleAuth(ctx, client, *baseURL, sub, rest)
	case "feed":
		handleFeed(*baseURL, sub, rest)
	case "export":
		handleExport(ctx, client, *baseURL, sub, rest)
	default:
		printUsage()
		os.Exit(1)
	}
}

func handleNovels(ctx context.Context, client *http.Client, baseURL, sub string, args []string) {
	switch sub {
	case "search":
		fs := flag.NewFlagSet("novels search", flag.ExitOnError)
		query := fs.String("q", "", "search query")
		genre := fs.String("genre", "", "genre filter")
		sort := fs.String("sort", "", "popular|rating|recent|alphabetical")
		grpcAddr := fs.String("grpc", "", "query the gRPC catalog service at this address instead of HTTP")
		_ = fs.Parse(args)

		if *grpcAddr != "" {
			resp, err := searchGRPC(ctx, *grpcAddr, &catalogrpc.ListRequest{Search: *query, Genre: *genre, Sort: *sort})
			if err != nil {
				log.Fatalf("search failed: %v", err)
			}
			printJSON(resp)
			return
		}

		endpoint, err := searchURL(baseURL, *query, *genre, *sort)
		if err != nil {
			log.Fatalf("invalid base url: %v", err)
		}
		var resp novelListResponse
		if err := doJSON(ctx, client, http.MethodGet, endpoint, nil, &resp); err != nil {
			log.Fatalf("search failed: %v", err)
		}
		printJSON(resp)
	case "show":
		fs := flag.NewFlagSet("novels show", flag.ExitOnError)
		id := fs.String("id", "", "novel id")
		_ = fs.Parse(args)
		if *id == "" {
			log.Fatal("novel id is required")
		}

		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodGet, baseURL+"/novel/"+url.PathEscape(*id), nil, &resp); err != nil {
			log.Fatalf("show failed: %v", err)
		}
		printJSON(resp)
	default:
		log.Fatal("usage: novelverse novels <search|show>")
	}
}

func handleReview(ctx context.Context, client *http.Client, baseURL, sub string, args []string) {
	if sub != "post" {
		log.Fatal("usage: novelverse review post")
	}
	fs := flag.NewFlagSet("review post", flag.ExitOnError)
	id := fs.String("id", "", "novel id")
	author := fs.String("author", "", "reviewer name")
	rating := fs.Int("rating", 5, "rating 1-5")
	content := fs.String("content", "", "review text")
	_ = fs.Parse(args)
	if *id == "" || strings.TrimSpace(*content) == "" {
		log.Fatal("id and content are required")
	}

	payload := map[string]any{"author": *author, "rating": *rating, "content": *content}
	var resp map[string]any
	endpoint := baseURL + "/novel/" + url.PathEscape(*id) + "/reviews"
	if err := doJSON(ctx, client, http.MethodPost, endpoint, payload, &resp); err != nil {
		log.Fatalf("review failed: %v", err)
	}
	printJSON(resp)
}

func handleAuth(ctx context.Context, client *http.Client, baseURL, sub string, args []string) {
	switch sub {
	case "login":
		fs := flag.NewFlagSet("auth login", flag.ExitOnError)
		email := fs.String("email", "", "email address")
		password := fs.String("password", "", "password")
		remember := fs.Bool("remember", false, "remember this device")
		_ = fs.Parse(args)
		if *email == "" || *password == "" {
			log.Fatal("email and password are required")
		}

		payload := models.LoginRequest{Email: *email, Password: *password, RememberMe: *remember}
		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodPost, baseURL+"/auth/login", payload, &resp); err != nil {
			log.Fatalf("login failed: %v", err)
		}
		fmt.Println("✅ logged in")
	case "signup":
		fs := flag.NewFlagSet("auth signup", flag.ExitOnError)
		username := fs.String("username", "", "username")
		email := fs.String("email", "", "email address")
		password := fs.String("password", "", "password")
		newsletter := fs.Bool("newsletter", false, "subscribe to the newsletter")
		_ = fs.Parse(args)
		if *username == "" || *email == "" || *password == "" {
			log.Fatal("username, email, and password are required")
		}

		payload := models.SignupRequest{
			Username:        *username,
			Email:           *email,
			Password:        *password,
			ConfirmPassword: *password,
			AgreeToTerms:    true,
			Newsletter:      *newsletter,
		}
		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodPost, baseURL+"/auth/signup", payload, &resp); err != nil {
			log.Fatalf("signup failed: %v", err)
		}
		fmt.Println("✅ account created")
	default:
		log.Fatal("usage: novelverse auth <login|signup>")
	}
}

func handleFeed(baseURL, sub string, args []string) {
	switch sub {
	case "listen":
		fs := flag.NewFlagSet("feed listen", flag.ExitOnError)
		addr := fs.String("addr", defaultFeedAddr, "TCP feed address")
		pretty := fs.Bool("pretty", false, "pretty-print JSON events")
		reconnect := fs.Bool("reconnect", false, "redial after a disconnect")
		_ = fs.Parse(args)
		for {
			err := runFeedTCP(*addr, *pretty)
			if !*reconnect {
				log.Fatalf("feed listen failed: %v", err)
			}
			log.Printf("[feed] disconnected: %v", err)
			time.Sleep(time.Second)
		}
	case "subscribe":
		fs := flag.NewFlagSet("feed subscribe", flag.ExitOnError)
		wsPath := fs.String("path", "/ws", "websocket path")
		_ = fs.Parse(args)
		wsURL, err := websocketURL(baseURL, *wsPath)
		if err != nil {
			log.Fatalf("invalid base url: %v", err)
		}
		if err := runWebSocket(wsURL); err != nil {
			log.Fatalf("feed subscribe failed: %v", err)
		}
	default:
		log.Fatal("usage: novelverse feed <listen|subscribe>")
	}
}

func handleExport(ctx context.Context, client *http.Client, baseURL, sub string, args []string) {
	if sub != "json" && sub != "csv" {
		log.Fatal("usage: novelverse export <json|csv>")
	}
	fs := flag.NewFlagSet("export "+sub, flag.ExitOnError)
	out := fs.String("out", "data/novels."+sub, "output path")
	_ = fs.Parse(args)

	endpoint, err := searchURL(baseURL, "", "", "")
	if err != nil {
		log.Fatalf("invalid base url: %v", err)
	}
	var resp novelListResponse
	if err := doJSON(ctx, client, http.MethodGet, endpoint, nil, &resp); err != nil {
		log.Fatalf("fetch novels failed: %v", err)
	}

	switch sub {
	case "json":
		err = writeJSON(*out, resp.Items)
	case "csv":
		err = writeCSV(*out, resp.Items)
	}
	if err != nil {
		log.Fatalf("export %s failed: %v", sub, err)
	}
	log.Printf("✅ exported %d novels to %s", len(resp.Items), *out)
}

func runFeedTCP(addr string, pretty bool) error {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	defer conn.Close()

	log.Printf("[feed] connected to %s", addr)
	reader := bufio.NewScanner(conn)
	for reader.Scan() {
		fmt.Println(formatLine(reader.Bytes(), pretty))
	}
	if err := reader.Err(); err != nil {
		return err
	}
	return os.ErrClosed
}

// formatLine indents a JSON event line; anything else passes through.
func formatLine(line []byte, pretty bool) string {
	if !pretty {
		return string(line)
	}
	var obj map[string]any
	if err := json.Unmarshal(line, &obj); err != nil {
		return string(line)
	}
	b, _ := json.MarshalIndent(obj, "", "  ")
	return string(b)
}

func runWebSocket(wsURL string) error {
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		return err
	}
	defer conn.Close()
	log.Printf("[feed] connected to %s", wsURL)
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		fmt.Println(string(msg))
	}
}

func searchGRPC(ctx context.Context, addr string, req *catalogrpc.ListRequest) (*catalogrpc.ListResponse, error) {
	cc, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	defer cc.Close()

	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	return catalogrpc.NewClient(cc).List(ctx, req)
}

func searchURL(baseURL, query, genre, sort string) (string, error) {
	u, err := url.Parse(baseURL + "/api/novels")
	if err != nil {
		return "", err
	}
	qv := u.Query()
	if query != "" {
		qv.Set("search", query)
	}
	if genre != "" {
		qv.Set("genre", genre)
	}
	if sort != "" {
		qv.Set("sort", sort)
	}
	u.RawQuery = qv.Encode()
	return u.String(), nil
}

func websocketURL(baseURL, path string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}
	scheme := "ws"
	if u.Scheme == "https" {
		scheme = "wss"
	}
	return (&url.URL{
		Scheme: scheme,
		Host:   u.Host,
		Path:   path,
	}).String(), nil
}

func writeJSON(path string, items []models.NovelSummary) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func writeCSV(path string, items []models.NovelSummary) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return catalog.WriteCSV(file, items)
}

func doJSON(ctx context.Context, client *http.Client, method, endpoint string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = strings.NewReader(string(b))
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s failed: %s", method, endpoint, strings.TrimSpace(string(data)))
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}

func printJSON(v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("json: %v", err)
	}
	fmt.Println(string(b))
}

func printUsage() {
	fmt.Println("novelverse [-api URL] <command> [subcommand] [flags]")
	fmt.Println("commands:")
	fmt.Println("  novels search|show")
	fmt.Println("  review post")
	fmt.Println("  auth login|signup")
	fmt.Println("  feed listen|subscribe")
	fmt.Println("  export json|csv")
}
