package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/MKhiriev/animal-catalog/internal/adapter"
	"github.com/MKhiriev/animal-catalog/models"
)

const usage = `Usage: client <command> [flags]

Commands:
  ping                               check that the API is running
  login    -u USER -p PASSWORD       print a bearer token
  list                               list all animals
  category -cat CATEGORY             list animals of a category
  count                              print the number of animals
  add      [auth] -name NAME [fields]
  update   [auth] -id ID [fields]
  delete   [auth] -id ID
  version                            print build information

Auth flags: -token TOKEN, or -u USER -p PASSWORD to log in first.
Field flags: -name -char -desc -habitat -diet -agg -cat -pic

The server address is read from ADAPTER_ADDRESS (default http://localhost:3000).
`

var errUsage = errors.New("usage")

// run executes one sub-command and writes its JSON result to out.
func run(ctx context.Context, catalog adapter.CatalogAdapter, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	name, args := args[0], args[1:]
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	switch name {
	case "ping":
		if err := fs.Parse(args); err != nil {
			return errUsage
		}
		msg, err := catalog.Ping(ctx)
		if err != nil {
			return err
		}
		return printJSON(out, models.MessageResponse{Message: msg})

	case "login":
		auth := authFlags(fs)
		if err := fs.Parse(args); err != nil || auth.username == "" {
			return errUsage
		}
		token, err := catalog.Login(ctx, auth.credentials())
		if err != nil {
			return err
		}
		return printJSON(out, models.TokenResponse{Token: token})

	case "list":
		if err := fs.Parse(args); err != nil {
			return errUsage
		}
		animals, err := catalog.ListAll(ctx)
		if err != nil {
			return err
		}
		return printJSON(out, nonNil(animals))

	case "category":
		category := fs.String("cat", "", "category")
		if err := fs.Parse(args); err != nil || *category == "" {
			return errUsage
		}
		animals, err := catalog.ListByCategory(ctx, *category)
		if err != nil {
			return err
		}
		return printJSON(out, nonNil(animals))

	case "count":
		if err := fs.Parse(args); err != nil {
			return errUsage
		}
		count, err := catalog.Count(ctx)
		if err != nil {
			return err
		}
		return printJSON(out, models.CountResponse{Count: count})

	case "add":
		auth := authFlags(fs)
		fields := animalFlags(fs)
		if err := fs.Parse(args); err != nil {
			return errUsage
		}
		if err := auth.apply(ctx, catalog); err != nil {
			return err
		}
		created, err := catalog.Add(ctx, fields())
		if err != nil {
			return err
		}
		return printJSON(out, created)

	case "update":
		auth := authFlags(fs)
		id := fs.Int64("id", 0, "animal id")
		fields := animalFlags(fs)
		if err := fs.Parse(args); err != nil || *id == 0 {
			return errUsage
		}
		if err := auth.apply(ctx, catalog); err != nil {
			return err
		}
		msg, err := catalog.Update(ctx, *id, fields())
		if err != nil {
			return err
		}
		return printJSON(out, models.MessageResponse{Message: msg})

	case "delete":
		auth := authFlags(fs)
		id := fs.Int64("id", 0, "animal id")
		if err := fs.Parse(args); err != nil || *id == 0 {
			return errUsage
		}
		if err := auth.apply(ctx, catalog); err != nil {
			return err
		}
		msg, err := catalog.Delete(ctx, *id)
		if err != nil {
			return err
		}
		return printJSON(out, models.MessageResponse{Message: msg})

	default:
		return errUsage
	}
}

type authOptions struct {
	token    string
	username string
	password string
}

func authFlags(fs *flag.FlagSet) *authOptions {
	opts := &authOptions{}
	fs.StringVar(&opts.token, "token", "", "bearer token")
	fs.StringVar(&opts.username, "u", "", "username")
	fs.StringVar(&opts.password, "p", "", "password")
	return opts
}

func (o *authOptions) credentials() models.Credentials {
	return models.Credentials{Username: o.username, Password: o.password}
}

// apply stores an explicit token, or logs in when a username was given.
func (o *authOptions) apply(ctx context.Context, catalog adapter.CatalogAdapter) error {
	if o.token != "" {
		catalog.SetToken(o.token)
		return nil
	}
	if o.username == "" {
		return nil
	}

	if _, err := catalog.Login(ctx, o.credentials()); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	return nil
}

// animalFlags registers the field flags on fs. The returned func builds
// [models.AnimalFields] from the flags that were actually set after Parse.
func animalFlags(fs *flag.FlagSet) func() models.AnimalFields {
	names := []string{"name", "char", "desc", "habitat", "diet", "agg", "cat", "pic"}
	values := make(map[string]*string, len(names))
	for _, name := range names {
		values[name] = fs.String(name, "", "animal "+name)
	}

	return func() models.AnimalFields {
		var fields models.AnimalFields
		fs.Visit(func(f *flag.Flag) {
			v, ok := values[f.Name]
			if !ok {
				return
			}
			value := *v
			switch f.Name {
			case "name":
				fields.Name = &value
			case "char":
				fields.Characteristics = &value
			case "desc":
				fields.Description = &value
			case "habitat":
				fields.Habitat = &value
			case "diet":
				fields.Diet = &value
			case "agg":
				level := models.AggressionLevel(value)
				fields.AggressionLevel = &level
			case "cat":
				fields.Category = &value
			case "pic":
				fields.PictureRef = &value
			}
		})
		return fields
	}
}

func nonNil(animals []models.Animal) []models.Animal {
	if animals == nil {
		return []models.Animal{}
	}
	return animals
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
