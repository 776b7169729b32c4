package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Global flags
	apiURL := "http://localhost:8080"
	if envURL := os.Getenv("API_URL"); envURL != "" {
		apiURL = envURL
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "populate":
		populateCmd(apiURL, args)
	case "timeline":
		timelineCmd(apiURL, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Seed - Development tool for populating the backend with users and tweets

USAGE:
  seed <command> [options]

COMMANDS:
  populate  Register N users, follow in a ring, and post a few tweets each
  timeline  Log in as a seeded user and print their timeline
  help      Show this help message

ENVIRONMENT:
  API_URL   Backend API URL (default: http://localhost:8080)

EXAMPLES:
  # Register 5 users where each follows the next one
  seed populate --count=5

  # Print the timeline of seeded user #1
  seed timeline --user=1`)
}

func populateCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("populate", flag.ExitOnError)
	count := fs.Int("count", 5, "number of users to register")
	fs.Parse(args)

	client := NewAPIClient(apiURL)

	type seeded struct {
		id    int64
		token string
	}
	users := make([]seeded, 0, *count)

	for i := 1; i <= *count; i++ {
		email := fmt.Sprintf("seed%d@example.com", i)
		id, err := client.SignUp(fmt.Sprintf("Seed User %d", i), email, "seedpassword", "seeded account")
		if err != nil {
			fmt.Printf("failed to register %s: %v\n", email, err)
			os.Exit(1)
		}

		login, err := client.Login(email, "seedpassword")
		if err != nil {
			fmt.Printf("failed to log in %s: %v\n", email, err)
			os.Exit(1)
		}

		users = append(users, seeded{id: id, token: login.AccessToken})
		fmt.Printf("registered user %d (id=%d)\n", i, id)
	}

	// Ring follow graph: user i follows user i+1
	for i, u := range users {
		target := users[(i+1)%len(users)]
		if target.id == u.id {
			continue
		}
		if err := client.Follow(u.token, target.id); err != nil {
			fmt.Printf("failed to follow: %v\n", err)
			os.Exit(1)
		}
	}

	for i, u := range users {
		for n := 1; n <= 3; n++ {
			tweet := fmt.Sprintf("hello from seed user %d, tweet %d", i+1, n)
			if err := client.Tweet(u.token, tweet); err != nil {
				fmt.Printf("failed to tweet: %v\n", err)
				os.Exit(1)
			}
		}
	}

	fmt.Printf("seeded %d users with follows and tweets\n", len(users))
}

func timelineCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("timeline", flag.ExitOnError)
	user := fs.Int("user", 1, "seeded user number to inspect")
	fs.Parse(args)

	client := NewAPIClient(apiURL)

	login, err := client.Login(fmt.Sprintf("seed%d@example.com", *user), "seedpassword")
	if err != nil {
		fmt.Printf("failed to log in seed user %d: %v\n", *user, err)
		os.Exit(1)
	}

	timeline, err := client.Timeline(login.AccessToken)
	if err != nil {
		fmt.Printf("failed to fetch timeline: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("timeline of user %d (%d entries):\n", timeline.UserID, len(timeline.Timeline))
	for _, entry := range timeline.Timeline {
		fmt.Printf("  [%d] %s\n", entry.UserID, entry.Tweet)
	}
}
