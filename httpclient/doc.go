// Package httpclient provides the runtime helpers used by generated API
// clients: relative path expansion, retry backoff, argument typechecking,
// media type matching, parameter name remapping and a request builder that
// turns method descriptors into prepared *http.Request values.
//
// Sending requests is left to the caller:
//
//	b := httpclient.NewRequestBuilder(&httpclient.Config{RootURL: root}, log)
//	req, err := b.Build(ctx, method, map[string]any{"bucket": "photos"}, nil)
//	if err != nil {
//		return err
//	}
//	resp, err := http.DefaultClient.Do(req.HTTP)
package httpclient
