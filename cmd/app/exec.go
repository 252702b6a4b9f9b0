// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"
	"io"

	"github.com/gardener/richcontent/pkg/content"
	"github.com/gardener/richcontent/pkg/link"
	"github.com/gardener/richcontent/pkg/osfakes/osshim"
	"github.com/gardener/richcontent/pkg/sanitize"
	"github.com/gardener/richcontent/pkg/urlhelper"
	"github.com/gardener/richcontent/pkg/usercontent"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

type rewriteFunc func(s string) (string, error)

func newProcessor(o *options) *content.Processor {
	opts := []content.Option{
		content.WithCorrector(link.New(
			link.WithLocalHosts(o.LocalHosts...),
			link.WithDefaultContext(o.DefaultContext),
		)),
	}
	if o.Secret != "" {
		opts = append(opts, content.WithUserContentScanner(usercontent.NewScanner([]byte(o.Secret))))
	}
	return content.NewProcessor(opts...)
}

func newRewriter(direction string, o *options) (rewriteFunc, error) {
	switch direction {
	case directionIncoming:
		p := newProcessor(o)
		return func(s string) (string, error) {
			return p.ProcessIncoming(s), nil
		}, nil
	case directionOutgoing:
		helper, err := urlhelper.New(o.Protocol, o.Host)
		if err != nil {
			return nil, err
		}
		p := newProcessor(o)
		return func(s string) (string, error) {
			return p.RewriteOutgoing(s, helper)
		}, nil
	case directionSanitize:
		policy := sanitize.Policy()
		return func(s string) (string, error) {
			return policy.Sanitize(s), nil
		}, nil
	}
	return nil, fmt.Errorf("unknown direction '%s'. Must be one of %v", direction, []string{directionIncoming, directionOutgoing, directionSanitize})
}

// readInput reads the file name, or in when name is empty or -, failing on
// inputs larger than max bytes. A max of zero or less is no limit.
func readInput(sh osshim.Os, in io.Reader, name string, max int64) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if name == "" || name == "-" {
		name = "standard input"
		if max > 0 {
			in = io.LimitReader(in, max+1)
		}
		data, err = io.ReadAll(in)
	} else {
		data, err = sh.ReadFile(name)
		if sh.IsNotExist(err) {
			return nil, fmt.Errorf("input file %s does not exist", name)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	if max > 0 && int64(len(data)) > max {
		return nil, fmt.Errorf("%s exceeds the maximum input size of %d bytes", name, max)
	}
	return data, nil
}

func rewriteOne(cmd *cobra.Command, vip *viper.Viper, sh osshim.Os, direction, name string) error {
	var o options
	if err := vip.Unmarshal(&o); err != nil {
		return err
	}
	rewrite, err := newRewriter(direction, &o)
	if err != nil {
		return err
	}
	data, err := readInput(sh, cmd.InOrStdin(), name, o.MaxInputBytes)
	if err != nil {
		return err
	}
	klog.V(6).Infof("%s: %d bytes", direction, len(data))
	out, err := rewrite(string(data))
	if err != nil {
		return err
	}
	_, err = io.WriteString(cmd.OutOrStdout(), out)
	return err
}
