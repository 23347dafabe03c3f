// Package qrcode turns a payload into a finished QR code file.
//
// An Encoder runs the whole pipeline for one request:
//
//  1. the payload and the rendering options are validated together, and
//     every problem is reported in a single validator.ValidationErrors;
//  2. the payload builds its canonical content string;
//  3. package symbol encodes the string into a module matrix, lowering the
//     error-correction level if the content does not fit;
//  4. package render serializes the matrix into the requested format.
//
// Either a complete Output or an error is returned, never both.
//
//	out, err := qrcode.Generate(ctx, payload.WiFi{SSID: "Home", Password: "secret"}, qrcode.DefaultOptions())
//	if err != nil {
//		f := qrcode.Classify(err)
//		// f.Code is one of validation_error, build_error, capacity_exceeded,
//		// not_supported or internal_error
//	}
//	w.Header().Set("Content-Type", out.MIMEType)
//	w.Write(out.Data)
//
// Encode does the same from a kind name and a loosely typed field map, as
// received from a form or JSON body. RawOptions resolves string options from
// the same source.
//
// Unexpected failures are logged through the logger passed with WithLogger.
package qrcode
