package ros

import (
	"bytes"
	"context"
	"encoding/binary"
	"io"
	"net"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DefaultServiceTimeout bounds a service call whose context has no deadline.
const DefaultServiceTimeout = 10 * time.Second

// Upper bound accepted for a response or error message body.
const maxServiceMessageSize = 64 << 20

type defaultServiceClient struct {
	logger    *logrus.Entry
	service   string
	srvType   ServiceType
	masterURI string
	nodeID    string
	timeout   time.Duration
}

func newDefaultServiceClient(logger *logrus.Entry, nodeID string, masterURI string, service string, srvType ServiceType, timeout time.Duration) *defaultServiceClient {
	client := new(defaultServiceClient)
	client.logger = logger.WithField("service", service)
	client.service = service
	client.srvType = srvType
	client.masterURI = masterURI
	client.nodeID = nodeID
	client.timeout = timeout
	return client
}

func (c *defaultServiceClient) Call(srv Service) error {
	return c.CallContext(context.Background(), srv)
}

func (c *defaultServiceClient) CallContext(ctx context.Context, srv Service) error {
	if _, ok := ctx.Deadline(); !ok && c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	result, err := callRosAPI(ctx, c.masterURI, "lookupService", c.nodeID, c.service)
	if err != nil {
		return errors.Wrapf(err, "lookup service %s", c.service)
	}
	serviceRawURL, converted := result.(string)
	if !converted {
		return errors.New("result of 'lookupService' is not a string")
	}
	serviceURL, err := url.Parse(serviceRawURL)
	if err != nil {
		return errors.Wrapf(err, "service URI %q", serviceRawURL)
	}
	c.logger.Debugf("Service provided at %s", serviceURL.Host)

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", serviceURL.Host)
	if err != nil {
		return errors.Wrapf(err, "connect to service %s", c.service)
	}
	defer conn.Close()
	if deadline, ok := ctx.Deadline(); ok {
		conn.SetDeadline(deadline)
	}
	stop := context.AfterFunc(ctx, func() {
		conn.SetDeadline(time.Unix(1, 0))
	})
	defer stop()

	if err := c.exchange(conn, srv); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return errors.Wrapf(ctxErr, "call service %s", c.service)
		}
		if deadline, ok := ctx.Deadline(); ok && !time.Now().Before(deadline) {
			return errors.Wrapf(context.DeadlineExceeded, "call service %s", c.service)
		}
		return err
	}
	return nil
}

// exchange runs one TCPROS service transaction over rw.
func (c *defaultServiceClient) exchange(rw io.ReadWriter, srv Service) error {
	logger := c.logger

	// 1. Write connection header
	md5sum := c.srvType.MD5Sum()
	headers := []header{
		{"service", c.service},
		{"md5sum", md5sum},
		{"type", c.srvType.Name()},
		{"callerid", c.nodeID},
		{"persistent", "0"},
	}
	logger.Debug("TCPROS Connection Header")
	for _, h := range headers {
		logger.Debugf("  `%s` = `%s`", h.key, h.value)
	}
	if err := writeConnectionHeader(headers, rw); err != nil {
		return errors.Wrap(err, "write connection header")
	}

	// 2. Read response header
	resHeaders, err := readConnectionHeader(rw)
	if err != nil {
		return errors.Wrap(err, "read response header")
	}
	resHeaderMap := headerMap(resHeaders)
	logger.Debug("TCPROS Response Header:")
	for _, h := range resHeaders {
		logger.Debugf("  `%s` = `%s`", h.key, h.value)
	}
	if msg, ok := resHeaderMap["error"]; ok {
		return errors.Errorf("service %s refused the connection: %s", c.service, msg)
	}
	if remote, ok := resHeaderMap["md5sum"]; ok && !md5Compatible(md5sum, remote) {
		return errors.Errorf("incompatible service type for %s: md5sum %s, remote %s", c.service, md5sum, remote)
	}

	// 3. Send request
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint32(0))
	if err := srv.ReqMessage().Serialize(&buf); err != nil {
		return errors.Wrap(err, "serialize request")
	}
	packet := buf.Bytes()
	binary.LittleEndian.PutUint32(packet, uint32(len(packet)-4))
	if _, err := rw.Write(packet); err != nil {
		return errors.Wrap(err, "send request")
	}

	// 4. Read OK byte
	var ok byte
	if err := binary.Read(rw, binary.LittleEndian, &ok); err != nil {
		return errors.Wrap(err, "read response status")
	}
	body, err := readSizedMessage(rw)
	if err != nil {
		return errors.Wrap(err, "read response")
	}
	if ok == 0 {
		return errors.Errorf("service %s failed: %s", c.service, string(body))
	}

	// 5. Receive response
	if err := srv.ResMessage().Deserialize(bytes.NewReader(body)); err != nil {
		return errors.Wrap(err, "deserialize response")
	}
	return nil
}

func (*defaultServiceClient) Shutdown() {}

func readSizedMessage(r io.Reader) ([]byte, error) {
	var size uint32
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return nil, err
	}
	if size > maxServiceMessageSize {
		return nil, errors.Errorf("message size %d too large", size)
	}
	body := make([]byte, int(size))
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, err
	}
	return body, nil
}

// md5Compatible treats "*" on either side as a wildcard.
func md5Compatible(local string, remote string) bool {
	return local == "*" || remote == "*" || local == remote
}
