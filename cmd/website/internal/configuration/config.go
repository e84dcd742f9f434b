package configuration

import "github.com/adampresley/configinator"

type Config struct {
	AdminPassword       string `flag:"adminpassword" env:"ADMIN_PASSWORD" default:"admin" description:"Password for the admin login gate. This is a demo gate, not real authentication"`
	AdminUsername       string `flag:"adminusername" env:"ADMIN_USERNAME" default:"admin" description:"Username for the admin login gate"`
	AwsEndpointUrl      string `flag:"awsep" env:"AWS_ENDPOINT_URL" default:"http://localhost:4566" description:"AWS endpoint URL"`
	AwsRegion           string `flag:"awsregion" env:"AWS_REGION" default:"us-central-1" description:"AWS region"`
	AwsAccessKeyId      string `flag:"awsaccesskeyid" env:"AWS_ACCESS_KEY_ID" default:"" description:"AWS access key ID"`
	AwsSecretAccessKey  string `flag:"awssecretaccesskey" env:"AWS_SECRET_ACCESS_KEY" default:"" description:"AWS secret access key"`
	AwsBucket           string `flag:"awsbucket" env:"AWS_BUCKET" default:"scoutgallery" description:"S3 bucket used by the s3 image host and s3 storage backend"`
	CloudName           string `flag:"cloudname" env:"CLOUD_NAME" default:"dqilpo1m1" description:"Cloudinary cloud name"`
	ContactToEmail      string `flag:"contacttoemail" env:"CONTACT_TO_EMAIL" default:"" description:"Where contact form messages are sent"`
	ContactToName       string `flag:"contacttoname" env:"CONTACT_TO_NAME" default:"Admin" description:"Name of the contact form recipient"`
	CookieSecret        string `flag:"cookiesecret" env:"COOKIE_SECRET" default:"password" description:"Secret for encoding cookies"`
	DataDir             string `flag:"datadir" env:"DATA_DIR" default:"./data" description:"Directory for the file storage backend"`
	DSN                 string `flag:"dsn" env:"DSN" default:"file:./data/scoutgallery.db" description:"Data source name for the sqlite storage backend"`
	EmailApiKey         string `flag:"emailapikey" env:"EMAIL_API_KEY" default:"" description:"API key for sending emails"`
	GalleryPrefix       string `flag:"galleryprefix" env:"GALLERY_PREFIX" default:"gallery" description:"S3 folder holding the gallery slot for the s3 storage backend"`
	GallerySlot         string `flag:"galleryslot" env:"GALLERY_SLOT" default:"pramuka_gallery_albums_v2" description:"Name of the storage slot holding the gallery"`
	Host                string `flag:"host" env:"HOST" default:"localhost:8081" description:"The address and port to bind the HTTP server to"`
	ImageFolder         string `flag:"imagefolder" env:"IMAGE_FOLDER" default:"uploads" description:"S3 folder for uploaded images when using the s3 image host"`
	ImageHost           string `flag:"imagehost" env:"IMAGE_HOST" default:"cloudinary" description:"Where images are uploaded. Valid values are 'cloudinary' and 's3'"`
	ImagePublicBaseURL  string `flag:"imagebaseurl" env:"IMAGE_PUBLIC_BASE_URL" default:"" description:"Public base URL for images stored with the s3 image host"`
	LinkCheckMinutes    int    `flag:"linkcheckminutes" env:"LINK_CHECK_MINUTES" default:"60" description:"Minutes between checks for broken image links"`
	LogLevel            string `flag:"loglevel" env:"LOG_LEVEL" default:"debug" description:"The log level to use. Valid values are 'debug', 'info', 'warn', and 'error'"`
	MaxLinkCheckWorkers int    `flag:"mlcw" env:"MAX_LINK_CHECK_WORKERS" default:"10" description:"Maximum number of concurrent link check workers"`
	MaxUploadMB         int    `flag:"maxuploadmb" env:"MAX_UPLOAD_MB" default:"50" description:"Maximum size of one upload batch in megabytes"`
	StorageBackend      string `flag:"storage" env:"STORAGE_BACKEND" default:"sqlite" description:"Where the gallery is stored. Valid values are 'file', 'sqlite', and 's3'"`
	UploadPreset        string `flag:"uploadpreset" env:"UPLOAD_PRESET" default:"geleril" description:"Cloudinary unsigned upload preset"`
}

func LoadConfig() Config {
	config := Config{}
	configinator.Behold(&config)
	return config
}
