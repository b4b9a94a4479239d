package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/stash/pkg/store"
)

var saveCmd = &cobra.Command{
	Use:   "save <filename> <text>",
	Short: "Save text under a filename in the data directory",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fs, err := newFS()
		if err != nil {
			return err
		}

		location, err := store.Save(store.New(fs), store.Text(args[1]), args[0])
		if err != nil {
			return err
		}

		fmt.Println(location)
		return nil
	},
}

var getCmd = &cobra.Command{
	Use:   "get <filename>",
	Short: "Print the text saved under a filename",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fs, err := newFS()
		if err != nil {
			return err
		}

		text, err := store.Get[store.Text](store.New(fs), args[0])
		if err != nil {
			return err
		}

		fmt.Println(string(text))
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <filename>",
	Short: "Delete the file saved under a filename",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fs, err := newFS()
		if err != nil {
			return err
		}

		return store.New(fs).Delete(args[0])
	},
}
