package imagehost

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"
)

const (
	defaultCloudinaryBaseURL = "https://api.cloudinary.com/v1_1"
)

type CloudinaryHostConfig struct {
	BaseURL      string
	CloudName    string
	HttpClient   *http.Client
	UploadPreset string
}

/*
CloudinaryHost does unsigned uploads: the upload preset stands in for
credentials.
*/
type CloudinaryHost struct {
	baseURL      string
	cloudName    string
	httpClient   *http.Client
	uploadPreset string
}

type cloudinaryResponse struct {
	SecureURL string `json:"secure_url"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func NewCloudinaryHost(config CloudinaryHostConfig) CloudinaryHost {
	if config.BaseURL == "" {
		config.BaseURL = defaultCloudinaryBaseURL
	}

	if config.HttpClient == nil {
		config.HttpClient = &http.Client{Timeout: time.Minute * 2}
	}

	return CloudinaryHost{
		baseURL:      config.BaseURL,
		cloudName:    config.CloudName,
		httpClient:   config.HttpClient,
		uploadPreset: config.UploadPreset,
	}
}

func (h CloudinaryHost) Endpoint() string {
	return fmt.Sprintf("%s/%s/upload", h.baseURL, h.cloudName)
}

func (h CloudinaryHost) Upload(ctx context.Context, fileName, contentType string, body io.Reader) (string, error) {
	var (
		err      error
		form     bytes.Buffer
		part     io.Writer
		request  *http.Request
		response *http.Response
		decoded  cloudinaryResponse
	)

	writer := multipart.NewWriter(&form)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, escapeQuotes(fileName)))
	header.Set("Content-Type", contentType)

	if part, err = writer.CreatePart(header); err != nil {
		return "", fmt.Errorf("error creating file part: %w", err)
	}

	if _, err = io.Copy(part, body); err != nil {
		return "", fmt.Errorf("error writing file part: %w", err)
	}

	if err = writer.WriteField("upload_preset", h.uploadPreset); err != nil {
		return "", fmt.Errorf("error writing upload preset: %w", err)
	}

	if err = writer.Close(); err != nil {
		return "", fmt.Errorf("error closing multipart form: %w", err)
	}

	if request, err = http.NewRequestWithContext(ctx, http.MethodPost, h.Endpoint(), &form); err != nil {
		return "", fmt.Errorf("error creating upload request: %w", err)
	}

	request.Header.Set("Content-Type", writer.FormDataContentType())

	if response, err = h.httpClient.Do(request); err != nil {
		return "", fmt.Errorf("error sending upload request: %w", err)
	}

	defer response.Body.Close()

	if err = json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("error decoding upload response, status: %s: %w", response.Status, err)
	}

	if decoded.SecureURL != "" && response.StatusCode < 300 {
		return decoded.SecureURL, nil
	}

	if decoded.Error != nil && decoded.Error.Message != "" {
		return "", fmt.Errorf("%s", decoded.Error.Message)
	}

	return "", fmt.Errorf("upload failed, status: %s", response.Status)
}

func escapeQuotes(s string) string {
	result := bytes.Buffer{}

	for _, r := range s {
		if r == '\\' || r == '"' {
			result.WriteRune('\\')
		}

		result.WriteRune(r)
	}

	return result.String()
}
