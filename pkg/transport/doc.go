// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package transport implements the HTTPS transport for CSW catalogues.

Requests are XML documents sent with POST; capabilities documents are
fetched with GET. Non-2xx responses are returned as *StatusError.

# Catalogues behind a private CA

DefaultHTTPSConfig negotiates TLS 1.2 or 1.3 against the system roots.
Catalogues on internal networks often use their own CA:

	cfg := transport.DefaultHTTPSConfig()
	cfg.RootCAs, err = transport.LoadRootCAs("/etc/csw/ca.pem")
	cfg.Username = "editor"
	cfg.Password = os.Getenv("CSW_PASSWORD")

	c := transport.NewHTTPSClient(cfg)
	reply, err := c.Post(ctx, "https://catalogue.example.com/csw", body, transport.ContentTypeXML)

# References

  - OGC CSW 2.0.2 HTTP binding: https://portal.ogc.org/files/?artifact_id=20555
  - TLS 1.3 RFC 8446: https://datatracker.ietf.org/doc/html/rfc8446
*/
package transport
