/*
Copyright 2024 The Yatai Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"crypto/tls"
	"flag"
	"os"

	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/healthz"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
	metricsserver "sigs.k8s.io/controller-runtime/pkg/metrics/server"
	"sigs.k8s.io/controller-runtime/pkg/webhook"

	resourcesv1alpha1 "github.com/bentoml/yatai-apis/pkg/apis/resources/v1alpha1"
	servingv2alpha1 "github.com/bentoml/yatai-apis/pkg/apis/serving/v2alpha1"
	"github.com/bentoml/yatai-apis/pkg/config"
	bentowebhook "github.com/bentoml/yatai-apis/pkg/webhook/admission/bento"
	bentodeploymentwebhook "github.com/bentoml/yatai-apis/pkg/webhook/admission/bentodeployment"
)

var (
	scheme   = runtime.NewScheme()
	setupLog = ctrl.Log.WithName("setup")
)

func init() {
	utilruntime.Must(clientgoscheme.AddToScheme(scheme))

	utilruntime.Must(resourcesv1alpha1.AddToScheme(scheme))
	utilruntime.Must(servingv2alpha1.AddToScheme(scheme))
}

// Options holds the program settings, environment values first, flags second
type Options struct {
	metricsAddr     string
	webhookPort     int
	probeAddr       string
	systemNamespace string
	leaderElection  bool
	enableHTTP2     bool
	zapOpts         zap.Options
}

// GetOptions reads the environment configuration and parses the program flags
// on top of it
func GetOptions() (Options, error) {
	cfg, err := config.Load()
	if err != nil {
		return Options{}, err
	}
	opts := Options{
		metricsAddr:     cfg.MetricsAddr,
		webhookPort:     cfg.WebhookPort,
		probeAddr:       cfg.ProbeAddr,
		systemNamespace: cfg.SystemNamespace,
		leaderElection:  cfg.LeaderElection,
	}
	flag.StringVar(&opts.metricsAddr, "metrics-addr", opts.metricsAddr, "The address the metric endpoint binds to.")
	flag.IntVar(&opts.webhookPort, "webhook-port", opts.webhookPort, "The port that the webhook server binds to.")
	flag.StringVar(&opts.probeAddr, "health-probe-addr", opts.probeAddr, "The address the probe endpoint binds to.")
	flag.StringVar(&opts.systemNamespace, "system-namespace", opts.systemNamespace,
		"The namespace holding the yatai system resources, used for the leader election lease.")
	flag.BoolVar(&opts.leaderElection, "leader-elect", opts.leaderElection,
		"Enable leader election for the yatai webhook manager. "+
			"Enabling this will ensure there is only one active webhook manager.")
	flag.BoolVar(&opts.enableHTTP2, "enable-http2", false, "If set, HTTP/2 will be enabled for the metrics and webhook servers")
	opts.zapOpts.BindFlags(flag.CommandLine)
	flag.Parse()
	return opts, nil
}

// managerOptions assembles the controller-runtime options. The webhooks read
// resources across all namespaces, only the leader election lease is pinned
// to the system namespace.
func managerOptions(options Options, tlsOpts []func(*tls.Config)) ctrl.Options {
	return ctrl.Options{
		Scheme:                  scheme,
		Metrics:                 metricsserver.Options{BindAddress: options.metricsAddr, TLSOpts: tlsOpts},
		WebhookServer:           webhook.NewServer(webhook.Options{Port: options.webhookPort, TLSOpts: tlsOpts}),
		HealthProbeBindAddress:  options.probeAddr,
		LeaderElection:          options.leaderElection,
		LeaderElectionID:        "yatai-webhook-manager",
		LeaderElectionNamespace: options.systemNamespace,
	}
}

func main() {
	options, err := GetOptions()
	if err != nil {
		ctrl.SetLogger(zap.New())
		setupLog.Error(err, "unable to load configuration")
		os.Exit(1)
	}
	ctrl.SetLogger(zap.New(zap.UseFlagOptions(&options.zapOpts)))

	// http/2 should be disabled due to its vulnerabilities. More specifically,
	// disabling http/2 will prevent from being vulnerable to the HTTP/2 Stream
	// Cancellation and Rapid Reset CVEs.
	disableHTTP2 := func(c *tls.Config) {
		setupLog.Info("disabling http/2")
		c.NextProtos = []string{"http/1.1"}
	}

	var tlsOpts []func(*tls.Config)
	if !options.enableHTTP2 {
		tlsOpts = append(tlsOpts, disableHTTP2)
	}

	mgr, err := ctrl.NewManager(ctrl.GetConfigOrDie(), managerOptions(options, tlsOpts))
	if err != nil {
		setupLog.Error(err, "unable to start manager")
		os.Exit(1)
	}

	setupLog.Info("Setting up Bento webhook")
	if err := ctrl.NewWebhookManagedBy(mgr).
		For(&resourcesv1alpha1.Bento{}).
		WithValidator(&bentowebhook.BentoValidator{Client: mgr.GetClient()}).
		Complete(); err != nil {
		setupLog.Error(err, "unable to register webhook", "webhook", "Bento")
		os.Exit(1)
	}

	setupLog.Info("Setting up BentoDeployment webhook")
	if err := ctrl.NewWebhookManagedBy(mgr).
		For(&servingv2alpha1.BentoDeployment{}).
		WithDefaulter(&bentodeploymentwebhook.BentoDeploymentDefaulter{}).
		WithValidator(&bentodeploymentwebhook.BentoDeploymentValidator{Client: mgr.GetClient()}).
		Complete(); err != nil {
		setupLog.Error(err, "unable to register webhook", "webhook", "BentoDeployment")
		os.Exit(1)
	}

	if err := mgr.AddHealthzCheck("healthz", healthz.Ping); err != nil {
		setupLog.Error(err, "unable to set up health check")
		os.Exit(1)
	}
	if err := mgr.AddReadyzCheck("readyz", healthz.Ping); err != nil {
		setupLog.Error(err, "unable to set up ready check")
		os.Exit(1)
	}

	setupLog.Info("starting manager")
	if err := mgr.Start(ctrl.SetupSignalHandler()); err != nil {
		setupLog.Error(err, "unable to run the manager")
		os.Exit(1)
	}
}
