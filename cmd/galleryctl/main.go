package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

var (
	Version string = "development"
)

func main() {
	err := godotenv.Load()
	if os.IsNotExist(err) {
		log.Printf("no .env file found, skipping")
	} else if err != nil {
		log.Fatalf("failed loading .env file: %s", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	err = newApp().Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "galleryctl"
	app.Usage = "Manage the scout gallery from the command line."
	app.Version = Version
	app.Flags = globalFlags()
	app.Before = func(ctx *cli.Context) error {
		if ctx.Bool("verbose") {
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		}

		return nil
	}
	app.Commands = []*cli.Command{
		{
			Name:   "albums",
			Usage:  "print the album catalog",
			Action: albumsAction,
		},
		{
			Name:  "list",
			Usage: "print the images of every album, or of one album",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "album",
					Usage: "only list this album",
				},
			},
			Action: listAction,
		},
		{
			Name:      "upload",
			Usage:     "compress and upload local image files into an album",
			ArgsUsage: "FILE...",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "album",
					Usage: "album to upload into. defaults to 'lainnya'",
				},
			},
			Action: uploadAction,
		},
		{
			Name:  "remove",
			Usage: "remove one image from an album",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "album",
					Usage:    "album holding the image",
					Required: true,
				},
				&cli.IntFlag{
					Name:     "index",
					Usage:    "position of the image in the album, starting at 0",
					Required: true,
				},
			},
			Action: removeAction,
		},
	}

	return app
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "log debug output to stderr",
		},
		&cli.StringFlag{
			Name:    "storage",
			Value:   "sqlite",
			Usage:   "where the gallery is stored: file, sqlite, s3 or memory",
			EnvVars: []string{"STORAGE_BACKEND"},
		},
		&cli.StringFlag{
			Name:    "data-dir",
			Value:   "./data",
			Usage:   "directory for the file storage backend",
			EnvVars: []string{"DATA_DIR"},
		},
		&cli.StringFlag{
			Name:    "dsn",
			Value:   "file:./data/scoutgallery.db",
			Usage:   "data source name for the sqlite storage backend",
			EnvVars: []string{"DSN"},
		},
		&cli.StringFlag{
			Name:    "slot",
			Value:   "pramuka_gallery_albums_v2",
			Usage:   "storage slot holding the gallery",
			EnvVars: []string{"GALLERY_SLOT"},
		},
		&cli.StringFlag{
			Name:    "gallery-prefix",
			Value:   "gallery",
			Usage:   "s3 folder holding the gallery slot",
			EnvVars: []string{"GALLERY_PREFIX"},
		},
		&cli.StringFlag{
			Name:    "image-host",
			Value:   "cloudinary",
			Usage:   "where images are uploaded: cloudinary or s3",
			EnvVars: []string{"IMAGE_HOST"},
		},
		&cli.StringFlag{
			Name:    "cloud-name",
			Value:   "dqilpo1m1",
			Usage:   "cloudinary cloud name",
			EnvVars: []string{"CLOUD_NAME"},
		},
		&cli.StringFlag{
			Name:    "upload-preset",
			Value:   "geleril",
			Usage:   "cloudinary unsigned upload preset",
			EnvVars: []string{"UPLOAD_PRESET"},
		},
		&cli.StringFlag{
			Name:    "image-folder",
			Value:   "uploads",
			Usage:   "s3 folder for uploaded images",
			EnvVars: []string{"IMAGE_FOLDER"},
		},
		&cli.StringFlag{
			Name:    "image-base-url",
			Usage:   "public base url for images stored in s3",
			EnvVars: []string{"IMAGE_PUBLIC_BASE_URL"},
		},
		&cli.StringFlag{
			Name:    "aws-endpoint",
			Value:   "http://localhost:4566",
			Usage:   "aws endpoint url",
			EnvVars: []string{"AWS_ENDPOINT_URL"},
		},
		&cli.StringFlag{
			Name:    "aws-region",
			Value:   "us-central-1",
			Usage:   "aws region",
			EnvVars: []string{"AWS_REGION"},
		},
		&cli.StringFlag{
			Name:    "aws-access-key-id",
			Usage:   "aws access key id",
			EnvVars: []string{"AWS_ACCESS_KEY_ID"},
		},
		&cli.StringFlag{
			Name:    "aws-secret-access-key",
			Usage:   "aws secret access key",
			EnvVars: []string{"AWS_SECRET_ACCESS_KEY"},
		},
		&cli.StringFlag{
			Name:    "aws-bucket",
			Value:   "scoutgallery",
			Usage:   "s3 bucket for the s3 image host and storage backend",
			EnvVars: []string{"AWS_BUCKET"},
		},
	}
}
