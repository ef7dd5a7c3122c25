package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"pet-adoption/internal/client"
)

type printer struct {
	out  io.Writer
	json bool
}

func (p printer) writeJSON(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// message imprime confirmaciones; en JSON como {"message": ..., "id": ...}.
func (p printer) message(msg string, id int64) error {
	if p.json {
		out := map[string]any{"message": msg}
		if id > 0 {
			out["id"] = id
		}
		return p.writeJSON(out)
	}
	if id > 0 {
		_, err := fmt.Fprintf(p.out, "%s (id %d)\n", msg, id)
		return err
	}
	_, err := fmt.Fprintln(p.out, msg)
	return err
}

func (p printer) pets(items []client.Pet) error {
	if p.json {
		return p.writeJSON(items)
	}
	if len(items) == 0 {
		_, err := fmt.Fprintln(p.out, "No pets found")
		return err
	}

	tw := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTYPE\tBREED\tAGE\tADOPTED")
	for _, pet := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%t\n", pet.ID, pet.Name, pet.Type, pet.Breed, pet.Age, pet.Adopted)
	}
	return tw.Flush()
}

func (p printer) pet(pet client.Pet) error {
	if p.json {
		return p.writeJSON(pet)
	}

	image := "-"
	if pet.ImageURL != nil {
		image = *pet.ImageURL
	}

	tw := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%d\n", pet.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", pet.Name)
	fmt.Fprintf(tw, "Type:\t%s\n", pet.Type)
	fmt.Fprintf(tw, "Breed:\t%s\n", pet.Breed)
	fmt.Fprintf(tw, "Gender:\t%s\n", pet.Gender)
	fmt.Fprintf(tw, "Age:\t%s\n", pet.Age)
	fmt.Fprintf(tw, "Description:\t%s\n", pet.Description)
	fmt.Fprintf(tw, "Image:\t%s\n", image)
	fmt.Fprintf(tw, "Adopted:\t%t\n", pet.Adopted)
	return tw.Flush()
}

func (p printer) requests(items []client.AdoptionRequest) error {
	if p.json {
		return p.writeJSON(items)
	}
	if len(items) == 0 {
		_, err := fmt.Fprintln(p.out, "No adoption requests found")
		return err
	}

	tw := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPET\tNAME\tEMAIL\tPHONE\tSTATUS")
	for _, r := range items {
		fmt.Fprintf(tw, "%d\t%s (#%d)\t%s\t%s\t%s\t%s\n", r.ID, r.PetName, r.PetID, r.UserName, r.Email, r.Phone, r.Status)
	}
	return tw.Flush()
}
