package planif

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	SourceID   = "planif-neige"
	SourceName = "Planif-Neige"

	operation = "GetPlanificationsForDate"

	soapEnvNS = "http://schemas.xmlsoap.org/soap/envelope/"
	xsiNS     = "http://www.w3.org/2001/XMLSchema-instance"
)

// FromDateLayout is the naive local timestamp format expected by fromDate.
const FromDateLayout = "2006-01-02T15:04:05"

var ErrEmptyEnvelope = errors.New("soap body has no response element")

// FaultError is a SOAP fault returned by the service.
type FaultError struct {
	Code   string
	String string
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("soap fault %s: %s", e.Code, e.String)
}

// Query is the argument of GetPlanificationsForDate.
type Query struct {
	FromDate string
	Token    string
}

// Config holds Planif-Neige transport configuration.
type Config struct {
	Endpoint   string
	Namespace  string
	SOAPAction string
	UserAgent  string
	Timeout    time.Duration
}

// Client calls the Planif-Neige SOAP service.
type Client struct {
	httpClient *http.Client
	endpoint   string
	namespace  string
	soapAction string
	userAgent  string
	logger     *slog.Logger
}

// New creates a new Planif-Neige client.
func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		endpoint:   cfg.Endpoint,
		namespace:  cfg.Namespace,
		soapAction: cfg.SOAPAction,
		userAgent:  cfg.UserAgent,
		logger:     logger.With("source", SourceID),
	}
}

// ID returns the source identifier.
func (c *Client) ID() string {
	return SourceID
}

// Name returns human-readable name.
func (c *Client) Name() string {
	return SourceName
}

// GetPlanificationsForDate invokes the remote operation and returns the
// decoded response object. Business status codes are not interpreted here.
func (c *Client) GetPlanificationsForDate(ctx context.Context, q Query) (Object, error) {
	body, err := c.envelope(q)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("Accept", "text/xml")
	req.Header.Set("SOAPAction", `"`+c.soapAction+`"`)
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug("calling operation", "operation", operation, "from_date", q.FromDate)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	root, decodeErr := decodeTree(resp.Body)

	if root != nil {
		if fault := findFault(root); fault != nil {
			return nil, fault
		}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decode response: %w", decodeErr)
	}

	result, err := responseElement(root)
	if err != nil {
		return nil, err
	}

	obj, ok := asObject(result.value())
	if !ok {
		return Fields{}, nil
	}
	return obj, nil
}

type envelope struct {
	XMLName xml.Name     `xml:"soapenv:Envelope"`
	SoapEnv string       `xml:"xmlns:soapenv,attr"`
	NS      string       `xml:"xmlns:ns,attr"`
	Header  struct{}     `xml:"soapenv:Header"`
	Body    envelopeBody `xml:"soapenv:Body"`
}

type envelopeBody struct {
	Operation operationRequest `xml:"ns:GetPlanificationsForDate"`
}

type operationRequest struct {
	Args operationArgs `xml:"getPlanificationsForDate"`
}

type operationArgs struct {
	FromDate    string `xml:"fromDate"`
	TokenString string `xml:"tokenString"`
}

func (c *Client) envelope(q Query) ([]byte, error) {
	env := envelope{
		SoapEnv: soapEnvNS,
		NS:      c.namespace,
		Body: envelopeBody{
			Operation: operationRequest{
				Args: operationArgs{FromDate: q.FromDate, TokenString: q.Token},
			},
		},
	}

	out, err := xml.Marshal(env)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}

// node is a namespace-agnostic XML element.
type node struct {
	name     string
	isNil    bool
	text     []byte
	children []*node
}

func decodeTree(r io.Reader) (*node, error) {
	dec := xml.NewDecoder(r)

	var root *node
	var stack []*node
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return root, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &node{name: t.Name.Local}
			for _, attr := range t.Attr {
				if attr.Name.Local == "nil" && (attr.Name.Space == xsiNS || attr.Name.Space == "xsi") {
					n.isNil = attr.Value == "true" || attr.Value == "1"
				}
			}
			if len(stack) == 0 {
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, n)
			}
			stack = append(stack, n)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				top.text = append(top.text, t...)
			}
		}
	}

	if root == nil {
		return nil, io.ErrUnexpectedEOF
	}
	return root, nil
}

func (n *node) child(name string) *node {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// value converts the element to a loosely typed value: leaves become
// strings (nil when xsi:nil), repeated children become []any.
func (n *node) value() any {
	if n.isNil {
		return nil
	}
	if len(n.children) == 0 {
		return string(bytes.TrimSpace(n.text))
	}

	counts := make(map[string]int, len(n.children))
	for _, c := range n.children {
		counts[c.name]++
	}

	out := make(Fields, len(counts))
	for _, c := range n.children {
		v := c.value()
		if counts[c.name] == 1 {
			out[c.name] = v
			continue
		}
		list, _ := out[c.name].([]any)
		out[c.name] = append(list, v)
	}
	return out
}

func findFault(root *node) *FaultError {
	body := root.child("Body")
	if body == nil {
		return nil
	}
	fault := body.child("Fault")
	if fault == nil {
		return nil
	}

	fe := &FaultError{}
	if c := fault.child("faultcode"); c != nil {
		fe.Code = string(bytes.TrimSpace(c.text))
	}
	if s := fault.child("faultstring"); s != nil {
		fe.String = string(bytes.TrimSpace(s.text))
	}
	return fe
}

// responseElement locates the element carrying responseStatus. Document
// and wrapped styles nest it at different depths below the body.
func responseElement(root *node) (*node, error) {
	body := root.child("Body")
	if body == nil {
		return nil, ErrEmptyEnvelope
	}
	if len(body.children) == 0 {
		return nil, ErrEmptyEnvelope
	}

	queue := append([]*node(nil), body.children...)
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n.child("responseStatus") != nil {
			return n, nil
		}
		queue = append(queue, n.children...)
	}

	// Without a status the classifier reports the missing code.
	return body.children[0], nil
}
