package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

// Seeds a running instance over HTTP with fake posts and bookings. User rows
// are owned by another system; the ids passed here must already exist in the
// users table (defaults assume ids 1..10 from the shared dev database).

var baseURL = "http://localhost:3000"

// Post is the POST /posts payload.
type Post struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	UserID  int    `json:"user_id"`
}

// Booking is the POST /bookings payload.
type Booking struct {
	UserID   int    `json:"user_id"`
	PostID   int    `json:"post_id"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Duration int    `json:"duration"`
}

func main() {
	if v := os.Getenv("SEED_BASE_URL"); v != "" {
		baseURL = v
	}
	gofakeit.Seed(time.Now().UnixNano())

	// 1. Create a handful of posts for the known dev users.
	var postIDs []int
	for i := 0; i < 10; i++ {
		post := Post{
			Title:   gofakeit.Sentence(4),
			Content: gofakeit.Paragraph(1, 3, 12, " "),
			UserID:  gofakeit.Number(1, 10),
		}
		if id := createPost(post); id > 0 {
			postIDs = append(postIDs, id)
		}
	}
	if len(postIDs) == 0 {
		log.Fatal("No posts created, aborting seeding process")
	}

	// 2. Book slots against the new posts.
	for i := 0; i < 15; i++ {
		booking := Booking{
			UserID:   gofakeit.Number(1, 10),
			PostID:   postIDs[gofakeit.Number(0, len(postIDs)-1)],
			Date:     gofakeit.DateRange(time.Now(), time.Now().AddDate(0, 1, 0)).Format("2006-01-02"),
			Time:     fmt.Sprintf("%02d:00:00", gofakeit.Number(8, 20)),
			Duration: gofakeit.Number(1, 4) * 30,
		}
		createBooking(booking)
	}

	// 3. Read everything back for a quick eyeball.
	listPosts(gofakeit.Number(1, 10))
	listBookings(gofakeit.Number(1, 10))
}

func createPost(post Post) int {
	body := postJSON("/posts", post)
	if body == nil {
		return 0
	}
	var created struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		log.Printf("Could not decode created post: %v", err)
		return 0
	}
	log.Printf("Created post %d", created.ID)
	return created.ID
}

func createBooking(booking Booking) {
	if body := postJSON("/bookings", booking); body != nil {
		log.Printf("Created booking: %s", body)
	}
}

func listPosts(userID int) {
	getAndLog(fmt.Sprintf("/posts/user/%d", userID))
}

func listBookings(userID int) {
	getAndLog(fmt.Sprintf("/bookings/user/%d", userID))
}

func postJSON(path string, payload interface{}) []byte {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Marshal error for %s: %v", path, err)
		return nil
	}
	resp, err := http.Post(baseURL+path, "application/json", bytes.NewBuffer(data))
	if err != nil {
		log.Printf("POST %s failed: %v", path, err)
		return nil
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		log.Printf("POST %s -> %d: %s", path, resp.StatusCode, body)
		return nil
	}
	return body
}

func getAndLog(path string) {
	resp, err := http.Get(baseURL + path)
	if err != nil {
		log.Printf("GET %s failed: %v", path, err)
		return
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	log.Printf("GET %s -> %d: %s", path, resp.StatusCode, body)
}
