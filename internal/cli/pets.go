package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"pet-adoption/internal/client"
)

func newPetsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pets",
		Short: "Browse and manage pets",
	}
	cmd.AddCommand(
		newPetsListCmd(opts),
		newPetsGetCmd(opts),
		newPetsAddCmd(opts),
		newPetsAdoptCmd(opts),
		newPetsDeleteCmd(opts),
	)
	return cmd
}

func newPetsListCmd(opts *options) *cobra.Command {
	var (
		petType string
		adopted string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := client.PetFilter{Type: petType}
			if adopted != "" {
				v, err := strconv.ParseBool(adopted)
				if err != nil {
					return fmt.Errorf("invalid --adopted %q", adopted)
				}
				f.Adopted = &v
			}

			c, err := opts.client()
			if err != nil {
				return err
			}
			items, err := c.ListPets(cmd.Context(), f)
			if err != nil {
				return fmt.Errorf("failed to list pets: %w", err)
			}
			return opts.printer(cmd.OutOrStdout()).pets(items)
		},
	}

	cmd.Flags().StringVar(&petType, "type", "", "Only pets of this exact type")
	cmd.Flags().StringVar(&adopted, "adopted", "", "Filter by adoption status (true, false)")
	return cmd
}

func newPetsGetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get [pet-id]",
		Short: "Show pet details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := opts.client()
			if err != nil {
				return err
			}
			pet, err := c.GetPet(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to get pet: %w", err)
			}
			if u := c.ResolveImageURL(pet.ImageURL); u != "" {
				pet.ImageURL = &u
			}
			return opts.printer(cmd.OutOrStdout()).pet(pet)
		},
	}
}

func newPetsAddCmd(opts *options) *cobra.Command {
	var (
		in        client.NewPet
		imagePath string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a pet (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if imagePath != "" {
				f, err := os.Open(imagePath)
				if err != nil {
					return fmt.Errorf("open image: %w", err)
				}
				defer f.Close()
				in.Image = f
				in.ImageName = filepath.Base(imagePath)
			}

			var id int64
			err := opts.asAdmin(cmd.Context(), func(ctx context.Context, c *client.Client) error {
				var err error
				id, err = c.CreatePet(ctx, in)
				return err
			})
			if err != nil {
				return fmt.Errorf("failed to add pet: %w", err)
			}
			return opts.printer(cmd.OutOrStdout()).message("Pet added successfully", id)
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "Pet name")
	cmd.Flags().StringVar(&in.Type, "type", "", "Pet type (dog, cat, ...)")
	cmd.Flags().StringVar(&in.Breed, "breed", "", "Breed")
	cmd.Flags().StringVar(&in.Gender, "gender", "", "Gender")
	cmd.Flags().StringVar(&in.Age, "age", "", "Age, free text")
	cmd.Flags().StringVar(&in.Description, "description", "", "Description")
	cmd.Flags().StringVar(&imagePath, "image", "", "Path to a png, jpg, jpeg or gif photo")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func newPetsAdoptCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "adopt [pet-id]",
		Short: "Mark a pet as adopted (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := opts.asAdmin(cmd.Context(), func(ctx context.Context, c *client.Client) error {
				return c.MarkAdopted(ctx, id)
			}); err != nil {
				return fmt.Errorf("failed to mark pet adopted: %w", err)
			}
			return opts.printer(cmd.OutOrStdout()).message("Pet marked as adopted", 0)
		},
	}
}

func newPetsDeleteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [pet-id]",
		Short: "Delete a pet and its adoption requests (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := opts.asAdmin(cmd.Context(), func(ctx context.Context, c *client.Client) error {
				return c.DeletePet(ctx, id)
			}); err != nil {
				return fmt.Errorf("failed to delete pet: %w", err)
			}
			return opts.printer(cmd.OutOrStdout()).message("Pet deleted successfully", 0)
		},
	}
}
