package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/form/v4"

	"hostpro/application"
)

var formDecoder = newFormDecoder()

func newFormDecoder() *form.Decoder {
	d := form.NewDecoder()
	d.RegisterCustomTypeFunc(func(vals []string) (interface{}, error) {
		return strings.TrimSpace(vals[0]), nil
	}, "")
	d.RegisterCustomTypeFunc(func(vals []string) (interface{}, error) {
		return checked(vals), nil
	}, false)
	return d
}

// checked reports whether a checkbox was ticked. Browsers send "on" by
// default; unticked boxes are absent.
func checked(vals []string) bool {
	if len(vals) == 0 {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(vals[0])) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}

// bindForm decodes the submitted form into dst by its form tags. Fields whose
// values fail to parse keep what dst already held and are reported in the
// returned form.DecodeErrors.
func bindForm(r *http.Request, dst any) error {
	if err := r.ParseForm(); err != nil {
		return err
	}
	return formDecoder.Decode(dst, r.Form)
}

// isDecodeError reports whether err only lists fields that failed to parse.
func isDecodeError(err error) bool {
	var decodeErrs form.DecodeErrors
	return errors.As(err, &decodeErrs)
}

// formErrors turns a service error into messages keyed by input name.
// Errors that are not field validation failures land under "form".
func formErrors(err error) map[string]string {
	if fields := application.FieldErrors(err); fields != nil {
		return fields
	}
	return map[string]string{"form": err.Error()}
}

// abandoned reports whether err comes from the client going away mid-request.
// The handler must then drop its result without writing a response.
func abandoned(r *http.Request, err error) bool {
	return r.Context().Err() != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded))
}
