package commands

import "fmt"

const usage = `designermonk: project records service with an image ingestion pipeline.

usage:
  designermonk run <config.yml>                 start the HTTP server
  designermonk events <config.yml> [consumer]   print pipeline events from the event stream
  designermonk version                          print the version
  designermonk help                             print this message

secrets are read from the environment (or .env outside prod):
  DATABASE_URI, BROKER_URI,
  CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY, CLOUDINARY_API_SECRET,
  MINIO_ROOT_USER, MINIO_ROOT_PASSWORD`

func HandleHelp(_ []string) {
	fmt.Println(usage) //nolint
}
