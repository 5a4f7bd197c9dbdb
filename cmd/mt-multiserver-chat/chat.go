package main

import (
	"fmt"
	"os"

	chat "github.com/HimbeerserverDE/mt-multiserver-chat"
)

func main() {
	dir := chat.NewDirectory(func(u chat.User, text string) error {
		fmt.Printf("-> %s: %s\n", u.Name, text)
		return nil
	})

	err := chat.Run(chat.RunOptions{
		Users:  dir,
		Sender: dir,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
