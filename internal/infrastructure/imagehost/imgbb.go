package imagehost

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/michelstore/storefront-service/config"
	"github.com/michelstore/storefront-service/pkg/errs"
	"github.com/michelstore/storefront-service/pkg/httpclient"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
)

// Image is the stable handle returned by the hosting service: a public URL
// plus the opaque id used for a later deletion attempt.
type Image struct {
	URL string
	ID  string
}

type Client interface {
	Upload(ctx context.Context, fileName string, content []byte) (Image, error)
	Delete(ctx context.Context, imageID string) error
}

type imgBBResponse struct {
	Success bool `json:"success"`
	Status  int  `json:"status"`
	Data    struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	} `json:"data"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

type ImgBBClient struct {
	config config.ImgBBConfig
	cb     *gobreaker.CircuitBreaker[[]byte]
}

func CreateImgBBClient(config config.ImgBBConfig) *ImgBBClient {
	var st gobreaker.Settings
	st.Name = "imgbb"
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
		return counts.Requests >= 3 && failureRatio >= 0.6
	}

	return &ImgBBClient{
		config: config,
		cb:     gobreaker.NewCircuitBreaker[[]byte](st),
	}
}

func (c *ImgBBClient) Upload(ctx context.Context, fileName string, content []byte) (image Image, err error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	// ImgBB takes the payload base64-encoded in the image form field.
	if err = writer.WriteField("image", base64.StdEncoding.EncodeToString(content)); err != nil {
		return image, err
	}

	if err = writer.WriteField("key", c.config.APIKey); err != nil {
		return image, err
	}

	if fileName != "" {
		if err = writer.WriteField("name", fileName); err != nil {
			return image, err
		}
	}

	if err = writer.Close(); err != nil {
		return image, err
	}

	respBody, err := c.cb.Execute(func() ([]byte, error) {
		statusCode, respBody, err := httpclient.SendRequest(ctx, httpclient.HttpRequest{
			URL:    c.config.Endpoint,
			Method: http.MethodPost,
			Body:   body.Bytes(),
			Headers: map[string]string{
				"Content-Type": writer.FormDataContentType(),
			},
		})
		if err != nil {
			return nil, err
		}

		if statusCode < 200 || statusCode > 299 {
			return respBody, fmt.Errorf("imgbb upload failed with status %d", statusCode)
		}

		return respBody, nil
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Upload").Msg("")
		return image, errs.ErrUpstream
	}

	var parsed imgBBResponse
	if err = json.Unmarshal(respBody, &parsed); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Upload").Msg("")
		return image, errs.ErrUpstream
	}

	if !parsed.Success {
		log.Ctx(ctx).Error().Str("component", "Upload").Str("upstream_error", parsed.Error.Message).Msg("")
		return image, errs.ErrUpstream
	}

	image.URL = parsed.Data.URL
	image.ID = parsed.Data.ID

	return image, nil
}

// Delete is best effort. ImgBB's free tier exposes no deletion API, so the
// attempt is logged and reported as success; orphaned remote images are an
// accepted tradeoff.
func (c *ImgBBClient) Delete(ctx context.Context, imageID string) error {
	if imageID == "" {
		return nil
	}

	log.Ctx(ctx).Info().Str("component", "Delete").Str("image_id", imageID).Msg("imgbb deletion attempted; free tier has no deletion API")
	return nil
}
